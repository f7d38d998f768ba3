package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/ticket-management/internal/config"
	"github.com/spec-kit/ticket-management/internal/domain"
)

func bootstrapConfig() config.Config {
	cfg := testConfig()
	cfg.Seed = config.SeedConfig{
		EngineerUsername: "default_engineer",
		EngineerPassword: "password",
	}
	return cfg
}

func TestEnsureDefaultEngineerCreatesWhenAbsent(t *testing.T) {
	var created *domain.Engineer
	engineers := &mockEngineerRepository{
		getByUsernameFunc: func(context.Context, string) (*domain.Engineer, error) {
			return nil, pgx.ErrNoRows
		},
		createFunc: func(_ context.Context, engineer *domain.Engineer) error {
			engineer.ID = "e1"
			created = engineer
			return nil
		},
	}

	if err := EnsureDefaultEngineer(context.Background(), bootstrapConfig(), engineers, zap.NewNop()); err != nil {
		t.Fatalf("EnsureDefaultEngineer: %v", err)
	}
	if created == nil {
		t.Fatal("default engineer was not created")
	}
	if created.Username != "default_engineer" || created.Role != domain.RoleEngineer {
		t.Errorf("created = %s/%s", created.Username, created.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("password")); err != nil {
		t.Errorf("seed password hash does not verify: %v", err)
	}
}

func TestEnsureDefaultEngineerIsIdempotent(t *testing.T) {
	createCalls := 0
	engineers := &mockEngineerRepository{
		getByUsernameFunc: func(context.Context, string) (*domain.Engineer, error) {
			return &domain.Engineer{ID: "e1", Username: "default_engineer", Role: domain.RoleEngineer}, nil
		},
		createFunc: func(context.Context, *domain.Engineer) error {
			createCalls++
			return nil
		},
	}

	for i := 0; i < 3; i++ {
		if err := EnsureDefaultEngineer(context.Background(), bootstrapConfig(), engineers, zap.NewNop()); err != nil {
			t.Fatalf("EnsureDefaultEngineer: %v", err)
		}
	}
	if createCalls != 0 {
		t.Errorf("createCalls = %d, want 0", createCalls)
	}
}
