// Package stats derives read-only aggregates from a snapshot of tickets.
// Nothing is cached: every call recomputes from its arguments.
package stats

import (
	"sort"

	"github.com/jackscave/service-desk/internal/domain"
)

// DefaultTopTagsLimit is the number of tags reported by the statistics view.
const DefaultTopTagsLimit = 4

// CategoryCount is the number of tickets filed under one category.
type CategoryCount struct {
	CategoryID string
	Name       string
	Color      string
	Count      int
}

// TagCount is the number of occurrences of one tag.
type TagCount struct {
	Tag   string
	Count int
}

// Summary holds the headline counters of the statistics view.
type Summary struct {
	Total    int
	Open     int
	Resolved int
	Critical int
}

// CategoryBreakdown counts tickets per category, one entry per category in
// the given order, zero counts included.
func CategoryBreakdown(tickets []domain.Ticket, categories []domain.Category) []CategoryCount {
	counts := make(map[string]int, len(categories))
	for _, ticket := range tickets {
		counts[ticket.CategoryID]++
	}
	result := make([]CategoryCount, 0, len(categories))
	for _, cat := range categories {
		result = append(result, CategoryCount{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Color:      cat.Color,
			Count:      counts[cat.ID],
		})
	}
	return result
}

// TopTags counts tag occurrences across all tickets and returns at most limit
// entries by descending count. Equal counts keep first-seen order. A
// non-positive limit returns every tag.
func TopTags(tickets []domain.Ticket, limit int) []TagCount {
	result := []TagCount{}
	index := map[string]int{}
	for _, ticket := range tickets {
		for _, tag := range ticket.Tags {
			if i, ok := index[tag]; ok {
				result[i].Count++
				continue
			}
			index[tag] = len(result)
			result = append(result, TagCount{Tag: tag, Count: 1})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// Summarize computes the headline counters.
func Summarize(tickets []domain.Ticket) Summary {
	s := Summary{Total: len(tickets)}
	for _, ticket := range tickets {
		switch ticket.Status {
		case domain.TicketStatusOpen:
			s.Open++
		case domain.TicketStatusResolved:
			s.Resolved++
		}
		if ticket.Priority == domain.TicketPriorityCritical {
			s.Critical++
		}
	}
	return s
}

// Percent returns part as a percentage of whole, or 0 when whole is zero.
func Percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
