package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jackscave/service-desk/internal/api/dto"
	"github.com/jackscave/service-desk/internal/domain"
	"github.com/jackscave/service-desk/internal/repository"
	"github.com/jackscave/service-desk/internal/service"
	"github.com/jackscave/service-desk/internal/session"
	apperrors "github.com/jackscave/service-desk/pkg/util/errorutil"
)

// TicketsHandler serves the board, ticket detail and ticket mutations.
type TicketsHandler struct {
	service *service.TicketService
	present presenter
}

// NewTicketsHandler constructs handler. A nil now uses time.Now.
func NewTicketsHandler(ticketService *service.TicketService, now func() time.Time) *TicketsHandler {
	if now == nil {
		now = time.Now
	}
	return &TicketsHandler{
		service: ticketService,
		present: presenter{registry: ticketService.Registry(), now: now},
	}
}

// CreateTicket POST /api/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" || req.Category == "" {
		return apperrors.NewValidationError("title and category required", nil)
	}

	ticket, err := h.service.CreateTicket(c.UserContext(), session.RoleFromContext(c), service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.Category,
		Tags:        req.Tags,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": h.present.ticketDetail(ticket)})
}

// ListTickets GET /api/tickets?status=&category=.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	status := domain.TicketStatus(strings.TrimSpace(c.Query("status")))
	if status == "" {
		return apperrors.NewValidationError("status required", nil)
	}
	if !h.service.Registry().ValidStatus(status) {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": status})
	}
	tickets := h.service.ListByStatus(c.UserContext(), status, c.Query("category"))
	return c.JSON(fiber.Map{"data": h.present.ticketSummaries(tickets)})
}

// Board GET /api/board?category=.
func (h *TicketsHandler) Board(c *fiber.Ctx) error {
	columns := h.service.Board(c.UserContext(), c.Query("category"))
	return c.JSON(fiber.Map{"data": h.present.board(columns)})
}

// GetTicket GET /api/tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	ticket, err := h.service.GetTicket(c.UserContext(), id)
	if err != nil {
		return ticketError(err, id)
	}
	return c.JSON(fiber.Map{"data": h.present.ticketDetail(ticket)})
}

// UpdateStatus PATCH /api/tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.UpdateStatus(c.UserContext(), session.RoleFromContext(c), id, req.Status)
	if err != nil {
		return ticketError(err, id)
	}
	return c.JSON(fiber.Map{"data": h.present.ticketSummary(ticket)})
}

// AddComment POST /api/tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}
	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return apperrors.NewValidationError("text required", nil)
	}
	ticket, err := h.service.AddComment(c.UserContext(), session.RoleFromContext(c), id, text)
	if err != nil {
		return ticketError(err, id)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": h.present.ticketDetail(ticket)})
}

// Stats GET /api/stats.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.present.statistics(h.service.Statistics(c.UserContext()))})
}

func ticketID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid ticket id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

// ticketError names the missing ticket in the error details.
func ticketError(err error, id int64) error {
	if errors.Is(err, repository.ErrTicketNotFound) {
		return apperrors.NewNotFound("ticket", map[string]any{"id": id})
	}
	return err
}
