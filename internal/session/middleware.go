package session

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/jackscave/service-desk/internal/domain"
)

const roleKey = "session_role"

// Middleware resolves the active role from the bearer token. Requests with a
// missing or unusable token continue as the user role.
type Middleware struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, logger *zap.Logger) *Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Middleware{tokens: tokens, logger: logger}
}

// Handle stores the resolved role in the request locals.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	role := domain.RoleUser
	if token := bearerToken(c.Get(fiber.HeaderAuthorization)); token != "" {
		parsed, err := m.tokens.Parse(token)
		if err != nil {
			m.logger.Debug("ignoring session token", zap.Error(err))
		} else {
			role = parsed
		}
	}
	c.Locals(roleKey, role)
	return c.Next()
}

// RoleFromContext returns the active role, defaulting to the user role.
func RoleFromContext(c *fiber.Ctx) domain.Role {
	if role, ok := c.Locals(roleKey).(domain.Role); ok {
		return role
	}
	return domain.RoleUser
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
