package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-management/internal/auth"
	"github.com/spec-kit/ticket-management/internal/config"
	"github.com/spec-kit/ticket-management/internal/domain"
	"github.com/spec-kit/ticket-management/internal/repository"
)

// EnsureDefaultEngineer provisions the configured default engineer account if
// it does not exist yet. The check is by username, so repeated startups are
// idempotent.
func EnsureDefaultEngineer(ctx context.Context, cfg config.Config, engineers repository.EngineerRepository, logger *zap.Logger) error {
	username := cfg.Seed.EngineerUsername
	if username == "" {
		return nil
	}

	if _, err := engineers.GetByUsername(ctx, username); err == nil {
		logger.Info("default engineer already exists", zap.String("username", username))
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Seed.EngineerPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	engineer := &domain.Engineer{
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleEngineer,
	}
	if err := engineers.Create(ctx, engineer); err != nil {
		return err
	}

	logger.Info("default engineer created", zap.String("username", username))
	return nil
}
