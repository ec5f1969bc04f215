package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackscave/service-desk/internal/catalog"
	"github.com/jackscave/service-desk/internal/domain"
	"github.com/jackscave/service-desk/internal/stats"
)

func TestCategoryBreakdown_NoTickets(t *testing.T) {
	categories := catalog.NewRegistry().Categories()
	breakdown := stats.CategoryBreakdown(nil, categories)

	require.Len(t, breakdown, len(categories))
	for i, entry := range breakdown {
		assert.Equal(t, categories[i].Name, entry.Name)
		assert.Zero(t, entry.Count)
	}
}

func TestCategoryBreakdown_SumsToTotal(t *testing.T) {
	categories := catalog.NewRegistry().Categories()
	tickets := []domain.Ticket{
		{CategoryID: "access"},
		{CategoryID: "access"},
		{CategoryID: "security"},
		{CategoryID: "interface"},
	}
	breakdown := stats.CategoryBreakdown(tickets, categories)

	total := 0
	byID := map[string]int{}
	for _, entry := range breakdown {
		total += entry.Count
		byID[entry.CategoryID] = entry.Count
	}
	assert.Equal(t, len(tickets), total)
	assert.Equal(t, 2, byID["access"])
	assert.Equal(t, 1, byID["security"])
	assert.Equal(t, 0, byID["availability"])
}

func TestTopTags(t *testing.T) {
	tickets := []domain.Ticket{
		{Tags: []string{"a"}},
		{Tags: []string{"a", "b"}},
		{Tags: []string{"a", "c"}},
		{Tags: []string{"b"}},
	}
	got := stats.TopTags(tickets, stats.DefaultTopTagsLimit)
	assert.Equal(t, []stats.TagCount{{Tag: "a", Count: 3}, {Tag: "b", Count: 2}, {Tag: "c", Count: 1}}, got)

	single := []domain.Ticket{{Tags: []string{"a", "a", "b", "a", "c", "b"}}}
	assert.Equal(t, got, stats.TopTags(single, stats.DefaultTopTagsLimit))
}

func TestTopTags_EmptySet(t *testing.T) {
	got := stats.TopTags(nil, stats.DefaultTopTagsLimit)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = stats.TopTags([]domain.Ticket{{Tags: []string{}}}, stats.DefaultTopTagsLimit)
	assert.Empty(t, got)
}

func TestTopTags_TiesKeepFirstSeenOrder(t *testing.T) {
	tickets := []domain.Ticket{
		{Tags: []string{"zeta", "alfa"}},
		{Tags: []string{"beta", "alfa"}},
		{Tags: []string{"gamma"}},
		{Tags: []string{"delta"}},
	}
	got := stats.TopTags(tickets, 4)
	assert.Equal(t, []stats.TagCount{
		{Tag: "alfa", Count: 2},
		{Tag: "zeta", Count: 1},
		{Tag: "beta", Count: 1},
		{Tag: "gamma", Count: 1},
	}, got)
}

func TestTopTags_Limit(t *testing.T) {
	tickets := []domain.Ticket{{Tags: []string{"a", "b", "c", "d", "e", "f"}}}
	assert.Len(t, stats.TopTags(tickets, 4), 4)
	assert.Len(t, stats.TopTags(tickets, 0), 6)
}

func TestSummarize(t *testing.T) {
	tickets := []domain.Ticket{
		{Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityCritical},
		{Status: domain.TicketStatusOpen, Priority: domain.TicketPriorityLow},
		{Status: domain.TicketStatusResolved, Priority: domain.TicketPriorityCritical},
		{Status: domain.TicketStatusClosed, Priority: domain.TicketPriorityHigh},
	}
	assert.Equal(t, stats.Summary{Total: 4, Open: 2, Resolved: 1, Critical: 2}, stats.Summarize(tickets))
	assert.Equal(t, stats.Summary{}, stats.Summarize(nil))
}

func TestPercent(t *testing.T) {
	assert.InDelta(t, 50.0, stats.Percent(1, 2), 1e-9)
	assert.Zero(t, stats.Percent(3, 0))
}
