package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ticket-management/internal/auth"
	"github.com/spec-kit/ticket-management/internal/config"
	"github.com/spec-kit/ticket-management/internal/domain"
	"github.com/spec-kit/ticket-management/internal/repository"
	apperrors "github.com/spec-kit/ticket-management/pkg/util"
)

// AccountService manages customer and engineer records. Passwords are hashed
// before persistence; the plaintext is discarded immediately and never part
// of any return value.
type AccountService struct {
	customers  repository.CustomerRepository
	engineers  repository.EngineerRepository
	bcryptCost int
}

// AccountDependencies encapsulates repositories for account management.
type AccountDependencies struct {
	CustomerRepo repository.CustomerRepository
	EngineerRepo repository.EngineerRepository
}

// NewAccountService constructs the service.
func NewAccountService(cfg config.Config, deps AccountDependencies) *AccountService {
	return &AccountService{
		customers:  deps.CustomerRepo,
		engineers:  deps.EngineerRepo,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

func validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}
	return nil
}

// RegisterCustomer creates a customer account. Duplicate usernames surface
// the storage-layer uniqueness violation as a conflict.
func (s *AccountService) RegisterCustomer(ctx context.Context, username, password string) (*domain.Customer, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	customer := &domain.Customer{
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, apperrors.MapError(err)
	}
	return customer, nil
}

// RegisterEngineer creates an engineer account.
func (s *AccountService) RegisterEngineer(ctx context.Context, username, password string) (*domain.Engineer, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	engineer := &domain.Engineer{
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
		Role:         domain.RoleEngineer,
	}
	if err := s.engineers.Create(ctx, engineer); err != nil {
		return nil, apperrors.MapError(err)
	}
	return engineer, nil
}

// UpdateCustomer replaces username and password. The supplied password is
// re-hashed unconditionally; there are no partial updates.
func (s *AccountService) UpdateCustomer(ctx context.Context, id, username, password string) (*domain.Customer, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	customer.Username = strings.TrimSpace(username)
	customer.PasswordHash = hash
	if err := s.customers.Update(ctx, customer); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return customer, nil
}

// UpdateEngineer replaces username and password, re-hashing unconditionally.
func (s *AccountService) UpdateEngineer(ctx context.Context, id, username, password string) (*domain.Engineer, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}
	engineer, err := s.engineers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("engineer", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	engineer.Username = strings.TrimSpace(username)
	engineer.PasswordHash = hash
	if err := s.engineers.Update(ctx, engineer); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("engineer", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return engineer, nil
}

// DeleteEngineer removes the engineer permanently. Tickets acknowledged by
// the engineer keep their status; the FK clears the acknowledger reference.
func (s *AccountService) DeleteEngineer(ctx context.Context, id string) error {
	if err := s.engineers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("engineer", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// GetCustomer fetches a customer by id.
func (s *AccountService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return customer, nil
}

// ListCustomers returns all customers.
func (s *AccountService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return customers, nil
}

// GetEngineer fetches an engineer by id.
func (s *AccountService) GetEngineer(ctx context.Context, id string) (*domain.Engineer, error) {
	engineer, err := s.engineers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("engineer", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return engineer, nil
}

// ListEngineers returns all engineers.
func (s *AccountService) ListEngineers(ctx context.Context) ([]domain.Engineer, error) {
	engineers, err := s.engineers.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return engineers, nil
}
