package repository_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackscave/service-desk/internal/catalog"
	"github.com/jackscave/service-desk/internal/domain"
	"github.com/jackscave/service-desk/internal/repository"
)

var fixedNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func newStore(t *testing.T) repository.TicketRepository {
	t.Helper()
	return repository.NewTicketRepository(catalog.NewRegistry(), repository.WithClock(func() time.Time { return fixedNow }))
}

func TestCreate_ValidTicket(t *testing.T) {
	store := newStore(t)
	_, err := store.Create(repository.CreateTicketInput{Title: "Primero", CategoryID: "interface"})
	require.NoError(t, err)

	ticket, err := store.Create(repository.CreateTicketInput{
		Title:       "No puedo iniciar sesión",
		Description: "Error 500 al entrar",
		CategoryID:  "access",
		Tags:        "login, urgente,  móvil ",
		Reporter:    "Usuario Actual",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, domain.TicketPriorityHigh, ticket.Priority)
	assert.Empty(t, ticket.Comments)
	assert.NotNil(t, ticket.Comments)
	assert.Equal(t, []string{"login", "urgente", "móvil"}, ticket.Tags)
	assert.Equal(t, "Usuario Actual", ticket.Reporter)
	assert.Equal(t, fixedNow, ticket.CreatedAt)
	assert.Equal(t, int64(2), ticket.ID)

	all := store.List()
	require.Len(t, all, 2)
	assert.Equal(t, ticket.ID, all[0].ID, "newest ticket comes first")
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	store := newStore(t)

	cases := map[string]repository.CreateTicketInput{
		"empty title":      {Title: "", CategoryID: "access"},
		"blank title":      {Title: "   ", CategoryID: "access"},
		"unknown category": {Title: "Algo", CategoryID: "billing"},
		"missing category": {Title: "Algo"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			ticket, err := store.Create(input)
			require.ErrorIs(t, err, repository.ErrInvalidTicket)
			assert.Nil(t, ticket)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestCreate_EmptyTagsInput(t *testing.T) {
	store := newStore(t)
	ticket, err := store.Create(repository.CreateTicketInput{Title: "Sin tags", CategoryID: "security"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, ticket.Tags)
	assert.Equal(t, domain.TicketPriorityCritical, ticket.Priority)
}

func TestCreate_IDsStayUniqueAfterLoad(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Load([]domain.Ticket{
		{ID: 7, Title: "b", CategoryID: "access", Status: domain.TicketStatusOpen},
		{ID: 3, Title: "a", CategoryID: "access", Status: domain.TicketStatusClosed},
	}))

	ticket, err := store.Create(repository.CreateTicketInput{Title: "c", CategoryID: "access"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), ticket.ID)

	next, err := store.Create(repository.CreateTicketInput{Title: "d", CategoryID: "access"})
	require.NoError(t, err)
	assert.Equal(t, int64(9), next.ID)
}

func TestSetStatus(t *testing.T) {
	store := newStore(t)
	created, err := store.Create(repository.CreateTicketInput{Title: "Caída", CategoryID: "availability", Tags: "foro"})
	require.NoError(t, err)
	_, err = store.AddComment(created.ID, domain.Comment{User: "Agente de Soporte", Avatar: "AS", Text: "Revisando"})
	require.NoError(t, err)
	before, err := store.GetByID(created.ID)
	require.NoError(t, err)

	updated, previous, err := store.SetStatus(created.ID, domain.TicketStatusResolved)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusResolved, updated.Status)
	assert.Equal(t, domain.TicketStatusOpen, previous)

	after, err := store.GetByID(created.ID)
	require.NoError(t, err)
	expected := *before
	expected.Status = domain.TicketStatusResolved
	assert.Equal(t, expected, *after)
}

func TestSetStatus_UnknownIDIsNoOp(t *testing.T) {
	store := newStore(t)
	_, err := store.Create(repository.CreateTicketInput{Title: "x", CategoryID: "access"})
	require.NoError(t, err)
	before := store.List()

	_, _, err = store.SetStatus(99, domain.TicketStatusClosed)
	require.ErrorIs(t, err, repository.ErrTicketNotFound)
	assert.Equal(t, before, store.List())
}

func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	store := newStore(t)
	created, err := store.Create(repository.CreateTicketInput{Title: "x", CategoryID: "access"})
	require.NoError(t, err)

	_, _, err = store.SetStatus(created.ID, domain.TicketStatus("archived"))
	require.ErrorIs(t, err, repository.ErrInvalidStatus)

	got, err := store.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, got.Status)
}

func TestAddComment(t *testing.T) {
	store := newStore(t)
	created, err := store.Create(repository.CreateTicketInput{Title: "x", CategoryID: "access"})
	require.NoError(t, err)

	first, err := store.AddComment(created.ID, domain.Comment{User: "Usuario Actual", Avatar: "UC", Text: "uno"})
	require.NoError(t, err)
	require.Len(t, first.Comments, 1)
	assert.Equal(t, fixedNow, first.Comments[0].Time)

	second, err := store.AddComment(created.ID, domain.Comment{User: "Agente de Soporte", Avatar: "AS", Text: "dos"})
	require.NoError(t, err)
	require.Len(t, second.Comments, 2)
	assert.Equal(t, "uno", second.Comments[0].Text)
	assert.Equal(t, "dos", second.Comments[1].Text)
	assert.Len(t, first.Comments, 1, "earlier snapshots are not mutated")
}

func TestAddComment_UnknownIDIsNoOp(t *testing.T) {
	store := newStore(t)
	_, err := store.AddComment(42, domain.Comment{Text: "hola"})
	require.ErrorIs(t, err, repository.ErrTicketNotFound)
	assert.Equal(t, 0, store.Len())
}

func TestListByStatus(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Load([]domain.Ticket{
		{ID: 4, Title: "d", CategoryID: "security", Status: domain.TicketStatusOpen},
		{ID: 3, Title: "c", CategoryID: "access", Status: domain.TicketStatusInProgress},
		{ID: 2, Title: "b", CategoryID: "access", Status: domain.TicketStatusOpen},
		{ID: 1, Title: "a", CategoryID: "interface", Status: domain.TicketStatusOpen},
	}))

	open := store.ListByStatus(domain.TicketStatusOpen, repository.AllCategories)
	assert.Equal(t, []int64{4, 2, 1}, ids(open))

	openAccess := store.ListByStatus(domain.TicketStatusOpen, "access")
	assert.Equal(t, []int64{2}, ids(openAccess))

	assert.Empty(t, store.ListByStatus(domain.TicketStatusClosed, repository.AllCategories))
	assert.Equal(t, open, store.ListByStatus(domain.TicketStatusOpen, repository.AllCategories), "repeated queries agree")
}

func TestListReturnsCopies(t *testing.T) {
	store := newStore(t)
	created, err := store.Create(repository.CreateTicketInput{Title: "x", CategoryID: "access", Tags: "a"})
	require.NoError(t, err)

	list := store.List()
	list[0].Tags[0] = "mutated"
	list[0].Title = "mutated"

	got, err := store.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Title)
	assert.Equal(t, []string{"a"}, got.Tags)
}

func TestLoad_RejectsBadFixtures(t *testing.T) {
	cases := map[string][]domain.Ticket{
		"duplicate id":     {{ID: 1, CategoryID: "access", Status: domain.TicketStatusOpen}, {ID: 1, CategoryID: "access", Status: domain.TicketStatusOpen}},
		"zero id":          {{ID: 0, CategoryID: "access", Status: domain.TicketStatusOpen}},
		"unknown status":   {{ID: 1, CategoryID: "access", Status: "waiting"}},
		"unknown category": {{ID: 1, CategoryID: "billing", Status: domain.TicketStatusOpen}},
	}
	for name, tickets := range cases {
		t.Run(name, func(t *testing.T) {
			store := newStore(t)
			require.Error(t, store.Load(tickets))
			assert.Equal(t, 0, store.Len())
		})
	}
}

func ids(tickets []domain.Ticket) []int64 {
	out := make([]int64, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID)
	}
	return out
}

func TestReadsKeepEmptySequences(t *testing.T) {
	store := newStore(t)
	created, err := store.Create(repository.CreateTicketInput{Title: "Sin etiquetas", CategoryID: "interface"})
	require.NoError(t, err)

	got, err := store.GetByID(created.ID)
	require.NoError(t, err)
	listed := store.ListByStatus(domain.TicketStatusOpen, repository.AllCategories)
	require.Len(t, listed, 1)

	for _, ticket := range []domain.Ticket{*created, *got, listed[0], store.List()[0]} {
		assert.NotNil(t, ticket.Tags)
		assert.NotNil(t, ticket.Comments)
		assert.Empty(t, ticket.Tags)
		assert.Empty(t, ticket.Comments)
	}
}

func TestSetStatus_ConcurrentMovesReportOneTransition(t *testing.T) {
	store := newStore(t)
	created, err := store.Create(repository.CreateTicketInput{Title: "x", CategoryID: "access"})
	require.NoError(t, err)

	const workers = 16
	previous := make(chan domain.TicketStatus, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, prev, err := store.SetStatus(created.ID, domain.TicketStatusResolved)
			if err == nil {
				previous <- prev
			}
		}()
	}
	wg.Wait()
	close(previous)

	transitions := 0
	for prev := range previous {
		if prev != domain.TicketStatusResolved {
			transitions++
		}
	}
	assert.Equal(t, 1, transitions)
}
