package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jackscave/service-desk/internal/api/dto"
	"github.com/jackscave/service-desk/internal/session"
	apperrors "github.com/jackscave/service-desk/pkg/util/errorutil"
)

// SessionHandler switches the UI mode.
type SessionHandler struct {
	tokens *session.TokenManager
}

// NewSessionHandler constructs handler.
func NewSessionHandler(tokens *session.TokenManager) *SessionHandler {
	return &SessionHandler{tokens: tokens}
}

// SwitchRole POST /api/session/role.
func (h *SessionHandler) SwitchRole(c *fiber.Ctx) error {
	var req dto.SwitchRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	token, exp, err := h.tokens.Issue(req.Role)
	if err != nil {
		if errors.Is(err, session.ErrUnknownRole) {
			return apperrors.NewValidationError("unknown role", map[string]any{"role": req.Role})
		}
		return apperrors.NewInternalError(err)
	}
	identity := req.Role.Identity()
	return c.JSON(fiber.Map{"data": dto.SessionResponse{
		Token:     token,
		ExpiresAt: exp,
		Role:      req.Role,
		User:      identity.User,
		Avatar:    identity.Avatar,
	}})
}

// Current GET /api/session.
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	role := session.RoleFromContext(c)
	identity := role.Identity()
	return c.JSON(fiber.Map{"data": dto.SessionResponse{
		Role:   role,
		User:   identity.User,
		Avatar: identity.Avatar,
	}})
}
