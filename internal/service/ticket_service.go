package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jackscave/service-desk/internal/catalog"
	"github.com/jackscave/service-desk/internal/domain"
	"github.com/jackscave/service-desk/internal/events"
	"github.com/jackscave/service-desk/internal/repository"
	"github.com/jackscave/service-desk/internal/stats"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets      repository.TicketRepository
	registry     *catalog.Registry
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	topTagsLimit int
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo   repository.TicketRepository
	Registry     *catalog.Registry
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	TopTagsLimit int
}

// TicketCreateInput describes ticket creation payload. Tags is the raw
// comma-separated text typed by the user.
type TicketCreateInput struct {
	Title       string
	Description string
	CategoryID  string
	Tags        string
}

// BoardColumn is one status column with its tickets, newest first.
type BoardColumn struct {
	Column  domain.StatusColumn
	Tickets []domain.Ticket
}

// Statistics bundles every aggregate of the statistics view.
type Statistics struct {
	Categories []stats.CategoryCount
	TopTags    []stats.TagCount
	Summary    stats.Summary
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := deps.TopTagsLimit
	if limit <= 0 {
		limit = stats.DefaultTopTagsLimit
	}
	return &TicketService{
		tickets:      deps.TicketRepo,
		registry:     deps.Registry,
		dispatcher:   deps.Dispatcher,
		logger:       logger,
		topTagsLimit: limit,
	}
}

// CreateTicket files a new ticket reported by the identity of role.
func (s *TicketService) CreateTicket(ctx context.Context, role domain.Role, input TicketCreateInput) (*domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	identity := role.Identity()
	ticket, err := s.tickets.Create(repository.CreateTicketInput{
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Tags:        input.Tags,
		Reporter:    identity.User,
	})
	if err != nil {
		s.logger.Debug("ticket rejected", zap.String("category", input.CategoryID), zap.Error(err))
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Actor:    actorFor(role),
		Payload: events.TicketCreatedPayload{
			CategoryID: ticket.CategoryID,
			Priority:   ticket.Priority,
			Title:      ticket.Title,
			Tags:       ticket.Tags,
		},
	})
	return ticket, nil
}

// UpdateStatus moves a ticket to another board column.
func (s *TicketService) UpdateStatus(ctx context.Context, role domain.Role, ticketID int64, newStatus domain.TicketStatus) (*domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ticket, previous, err := s.tickets.SetStatus(ticketID, newStatus)
	if err != nil {
		return nil, err
	}
	if previous != newStatus {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketStatusChanged,
			TicketID: ticket.ID,
			Actor:    actorFor(role),
			Payload: events.TicketStatusChangedPayload{
				OldStatus: previous,
				NewStatus: newStatus,
			},
		})
	}
	return ticket, nil
}

// AddComment appends a comment signed with the identity of role.
func (s *TicketService) AddComment(ctx context.Context, role domain.Role, ticketID int64, text string) (*domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	identity := role.Identity()
	ticket, err := s.tickets.AddComment(ticketID, domain.Comment{
		User:   identity.User,
		Avatar: identity.Avatar,
		Text:   text,
	})
	if err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCommentAdded,
		TicketID: ticket.ID,
		Actor:    actorFor(role),
		Payload: events.TicketCommentAddedPayload{
			CommentCount: len(ticket.Comments),
			TextPreview:  stringPreview(text, 120),
		},
	})
	return ticket, nil
}

// GetTicket returns a single ticket.
func (s *TicketService) GetTicket(ctx context.Context, ticketID int64) (*domain.Ticket, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.tickets.GetByID(ticketID)
}

// ListByStatus returns tickets in one column. An empty category filter matches all.
func (s *TicketService) ListByStatus(_ context.Context, status domain.TicketStatus, categoryFilter string) []domain.Ticket {
	return s.tickets.ListByStatus(status, normalizeCategoryFilter(categoryFilter))
}

// Board returns every status column with its tickets.
func (s *TicketService) Board(ctx context.Context, categoryFilter string) []BoardColumn {
	columns := s.registry.StatusColumns()
	board := make([]BoardColumn, 0, len(columns))
	for _, col := range columns {
		board = append(board, BoardColumn{
			Column:  col,
			Tickets: s.ListByStatus(ctx, col.ID, categoryFilter),
		})
	}
	return board
}

// Statistics recomputes every aggregate from the live collection.
func (s *TicketService) Statistics(_ context.Context) Statistics {
	snapshot := s.tickets.List()
	return Statistics{
		Categories: stats.CategoryBreakdown(snapshot, s.registry.Categories()),
		TopTags:    stats.TopTags(snapshot, s.topTagsLimit),
		Summary:    stats.Summarize(snapshot),
	}
}

// Registry exposes the category registry to presentation code.
func (s *TicketService) Registry() *catalog.Registry {
	return s.registry
}

func normalizeCategoryFilter(filter string) string {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return repository.AllCategories
	}
	return filter
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed",
			zap.String("event_type", string(event.Type)),
			zap.Int64("ticket_id", event.TicketID),
			zap.Error(err))
	}
}

func actorFor(role domain.Role) events.Actor {
	identity := role.Identity()
	if !role.Valid() {
		role = domain.RoleUser
	}
	return events.Actor{
		Role:   role,
		User:   identity.User,
		Avatar: identity.Avatar,
	}
}

func stringPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) <= max {
		return body
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
