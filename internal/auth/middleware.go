package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ticket-management/internal/domain"
	"github.com/spec-kit/ticket-management/internal/repository"
	apperrors "github.com/spec-kit/ticket-management/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Exactly one of Customer or
// Engineer is set, matching Role.
type Principal struct {
	Role        domain.Role
	Customer    *domain.Customer
	Engineer    *domain.Engineer
	TokenID     string
	TokenExpiry time.Time
}

// AuthMiddleware validates session tokens and loads principals.
type AuthMiddleware struct {
	tokens     *TokenManager
	sessions   SessionStore
	customers  repository.CustomerRepository
	engineers  repository.EngineerRepository
	cookieName string
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions SessionStore, customers repository.CustomerRepository, engineers repository.EngineerRepository, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:     tokens,
		sessions:   sessions,
		customers:  customers,
		engineers:  engineers,
		cookieName: cookieName,
	}
}

// Handle enforces authentication for protected routes. The token is read from
// the session cookie, or from a bearer header for non-browser clients.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	tokenStr := m.extractToken(c)
	if tokenStr == "" {
		return apperrors.NewUnauthorized("authentication required")
	}

	claims, err := m.tokens.ParseToken(tokenStr)
	if err != nil {
		return apperrors.NewUnauthorized("invalid session token")
	}

	if m.sessions != nil {
		revoked, err := m.sessions.IsRevoked(c.Context(), claims.ID)
		if err != nil {
			return apperrors.MapError(err)
		}
		if revoked {
			return apperrors.NewUnauthorized("session terminated")
		}
	}

	principal := &Principal{Role: claims.Role, TokenID: claims.ID}
	if claims.ExpiresAt != nil {
		principal.TokenExpiry = claims.ExpiresAt.Time
	}

	switch claims.Role {
	case domain.RoleCustomer:
		customer, err := m.customers.GetByID(c.Context(), claims.SubjectID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewUnauthorized("user not found")
			}
			return apperrors.MapError(err)
		}
		principal.Customer = customer
	case domain.RoleEngineer:
		engineer, err := m.engineers.GetByID(c.Context(), claims.SubjectID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.NewUnauthorized("user not found")
			}
			return apperrors.MapError(err)
		}
		principal.Engineer = engineer
	default:
		return apperrors.NewUnauthorized("unknown role")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

func (m *AuthMiddleware) extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(m.cookieName); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
