package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ticket-management/internal/auth"
	"github.com/spec-kit/ticket-management/internal/config"
	"github.com/spec-kit/ticket-management/internal/domain"
	"github.com/spec-kit/ticket-management/internal/repository"
	apperrors "github.com/spec-kit/ticket-management/pkg/util"
)

// LoginResult carries the authenticated identity and its session token.
type LoginResult struct {
	SubjectID string
	Username  string
	Role      domain.Role
	Token     string
	ExpiresAt time.Time
}

// AuthService coordinates login and logout flows.
type AuthService struct {
	customers repository.CustomerRepository
	engineers repository.EngineerRepository
	sessions  auth.SessionStore
	tokenMgr  *auth.TokenManager
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	CustomerRepo repository.CustomerRepository
	EngineerRepo repository.EngineerRepository
	SessionStore auth.SessionStore
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		customers: deps.CustomerRepo,
		engineers: deps.EngineerRepo,
		sessions:  deps.SessionStore,
		tokenMgr:  auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL()),
	}
}

// Login resolves the username against the customer collection first, then
// the engineer collection; the first match wins. The session role is derived
// from the matched entity.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if customer, err := s.customers.GetByUsername(ctx, username); err == nil {
		return s.issueSession(customer.ID, customer.Username, customer.PasswordHash, domain.RoleCustomer, password)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	engineer, err := s.engineers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("user not found")
		}
		return nil, apperrors.MapError(err)
	}
	return s.issueSession(engineer.ID, engineer.Username, engineer.PasswordHash, domain.RoleEngineer, password)
}

func (s *AuthService) issueSession(subjectID, username, passwordHash string, role domain.Role, password string) (*LoginResult, error) {
	if err := auth.ComparePassword(passwordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	token, expiresAt, err := s.tokenMgr.GenerateToken(subjectID, role)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &LoginResult{
		SubjectID: subjectID,
		Username:  username,
		Role:      role,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes the session token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.sessions == nil {
		return nil
	}
	remaining := time.Until(expiresAt)
	if remaining <= 0 {
		return nil
	}
	if err := s.sessions.Revoke(ctx, tokenID, remaining); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
