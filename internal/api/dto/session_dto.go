package dto

import (
	"time"

	"github.com/jackscave/service-desk/internal/domain"
)

// SwitchRoleRequest payload.
type SwitchRoleRequest struct {
	Role domain.Role `json:"role"`
}

// SessionResponse returns the mode token and the identity it stamps.
type SessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Role      domain.Role `json:"role"`
	User      string      `json:"user"`
	Avatar    string      `json:"avatar"`
}
