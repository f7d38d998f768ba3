package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-management/internal/api/dto"
	"github.com/spec-kit/ticket-management/internal/auth"
	"github.com/spec-kit/ticket-management/internal/config"
	"github.com/spec-kit/ticket-management/internal/service"
	apperrors "github.com/spec-kit/ticket-management/pkg/util"
)

// AuthHandler exposes login and logout.
type AuthHandler struct {
	auth   *service.AuthService
	cookie config.AuthConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookieCfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{auth: authService, cookie: cookieCfg}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	result, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.SessionCookieName,
		Value:    result.Token,
		Expires:  result.ExpiresAt,
		HTTPOnly: h.cookie.SessionCookieHTTPOnly,
		Secure:   h.cookie.SessionCookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		ID:        result.SubjectID,
		Username:  result.Username,
		Role:      result.Role,
		ExpiresAt: result.ExpiresAt,
	}})
}

// Logout handles POST /logout. The session token is revoked and the cookie
// cleared.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.auth.Logout(c.Context(), principal.TokenID, principal.TokenExpiry); err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookie.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: h.cookie.SessionCookieHTTPOnly,
		Secure:   h.cookie.SessionCookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{"data": fiber.Map{"message": "logged out"}})
}
