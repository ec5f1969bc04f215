package repository

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jackscave/service-desk/internal/domain"
)

// AllCategories is the category filter sentinel that matches every ticket.
const AllCategories = "all"

// CategoryResolver looks up reference data needed to validate tickets.
type CategoryResolver interface {
	Resolve(id string) (domain.Category, bool)
	ValidStatus(status domain.TicketStatus) bool
}

// CreateTicketInput describes a new ticket. Tags is the raw comma-separated input.
type CreateTicketInput struct {
	Title       string
	Description string
	CategoryID  string
	Tags        string
	Reporter    string
}

// TicketRepository owns the ticket collection.
type TicketRepository interface {
	Create(input CreateTicketInput) (*domain.Ticket, error)
	SetStatus(id int64, status domain.TicketStatus) (*domain.Ticket, domain.TicketStatus, error)
	AddComment(id int64, comment domain.Comment) (*domain.Ticket, error)
	GetByID(id int64) (*domain.Ticket, error)
	ListByStatus(status domain.TicketStatus, categoryFilter string) []domain.Ticket
	List() []domain.Ticket
	Load(tickets []domain.Ticket) error
	Len() int
}

// StoreOption customizes a ticket store.
type StoreOption func(*ticketStore)

// WithClock overrides the time source used for created and comment timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *ticketStore) {
		if now != nil {
			s.now = now
		}
	}
}

// ticketStore keeps tickets newest-first. Every mutation replaces the stored
// ticket under the write lock; readers receive copies.
type ticketStore struct {
	mu         sync.RWMutex
	categories CategoryResolver
	tickets    []domain.Ticket
	nextID     int64
	now        func() time.Time
}

// NewTicketRepository builds an empty in-memory store.
func NewTicketRepository(categories CategoryResolver, opts ...StoreOption) TicketRepository {
	s := &ticketStore{
		categories: categories,
		tickets:    []domain.Ticket{},
		nextID:     1,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ticketStore) Create(input CreateTicketInput) (*domain.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title required", ErrInvalidTicket)
	}
	category, ok := s.categories.Resolve(input.CategoryID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidTicket, input.CategoryID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ticket := domain.Ticket{
		ID:          s.nextID,
		Title:       title,
		Description: input.Description,
		CategoryID:  category.ID,
		Priority:    category.Priority,
		Status:      domain.TicketStatusOpen,
		Tags:        ParseTags(input.Tags),
		Comments:    []domain.Comment{},
		Reporter:    input.Reporter,
		CreatedAt:   s.now(),
	}
	s.nextID++

	next := make([]domain.Ticket, 0, len(s.tickets)+1)
	next = append(next, ticket)
	s.tickets = append(next, s.tickets...)

	out := ticket.Clone()
	return &out, nil
}

// SetStatus moves a ticket to status and returns the updated ticket with the
// status it held before, both read under the same lock.
func (s *ticketStore) SetStatus(id int64, status domain.TicketStatus) (*domain.Ticket, domain.TicketStatus, error) {
	if !s.categories.ValidStatus(status) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	var previous domain.TicketStatus
	ticket, err := s.update(id, func(t *domain.Ticket) {
		previous = t.Status
		t.Status = status
	})
	if err != nil {
		return nil, "", err
	}
	return ticket, previous, nil
}

func (s *ticketStore) AddComment(id int64, comment domain.Comment) (*domain.Ticket, error) {
	if comment.Time.IsZero() {
		comment.Time = s.now()
	}
	return s.update(id, func(t *domain.Ticket) {
		comments := make([]domain.Comment, 0, len(t.Comments)+1)
		comments = append(comments, t.Comments...)
		t.Comments = append(comments, comment)
	})
}

func (s *ticketStore) update(id int64, mutate func(*domain.Ticket)) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", ErrTicketNotFound, id)
	}
	updated := s.tickets[idx].Clone()
	mutate(&updated)
	s.tickets[idx] = updated

	out := updated.Clone()
	return &out, nil
}

func (s *ticketStore) GetByID(id int64) (*domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", ErrTicketNotFound, id)
	}
	out := s.tickets[idx].Clone()
	return &out, nil
}

func (s *ticketStore) ListByStatus(status domain.TicketStatus, categoryFilter string) []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []domain.Ticket{}
	for _, ticket := range s.tickets {
		if ticket.Status != status {
			continue
		}
		if categoryFilter != AllCategories && ticket.CategoryID != categoryFilter {
			continue
		}
		result = append(result, ticket.Clone())
	}
	return result
}

func (s *ticketStore) List() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Ticket, 0, len(s.tickets))
	for _, ticket := range s.tickets {
		result = append(result, ticket.Clone())
	}
	return result
}

// Load replaces the collection with tickets, kept in the given order. The id
// counter continues after the highest loaded id.
func (s *ticketStore) Load(tickets []domain.Ticket) error {
	loaded := make([]domain.Ticket, 0, len(tickets))
	seen := make(map[int64]struct{}, len(tickets))
	var maxID int64
	for _, ticket := range tickets {
		if ticket.ID <= 0 {
			return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidTicket, ticket.ID)
		}
		if _, dup := seen[ticket.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidTicket, ticket.ID)
		}
		if !s.categories.ValidStatus(ticket.Status) {
			return fmt.Errorf("ticket %d: %w: %q", ticket.ID, ErrInvalidStatus, ticket.Status)
		}
		if _, ok := s.categories.Resolve(ticket.CategoryID); !ok {
			return fmt.Errorf("%w: ticket %d has unknown category %q", ErrInvalidTicket, ticket.ID, ticket.CategoryID)
		}
		seen[ticket.ID] = struct{}{}
		if ticket.ID > maxID {
			maxID = ticket.ID
		}
		clone := ticket.Clone()
		if clone.Tags == nil {
			clone.Tags = []string{}
		}
		if clone.Comments == nil {
			clone.Comments = []domain.Comment{}
		}
		loaded = append(loaded, clone)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickets = loaded
	s.nextID = maxID + 1
	return nil
}

func (s *ticketStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tickets)
}

func (s *ticketStore) indexOf(id int64) int {
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			return i
		}
	}
	return -1
}
