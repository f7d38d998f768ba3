package dto

import (
	"time"

	"github.com/spec-kit/ticket-management/internal/domain"
)

// LoginRequest payload for session login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned alongside the session cookie.
type LoginResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}
