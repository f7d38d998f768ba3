package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/ticket-management/internal/config"
	"github.com/spec-kit/ticket-management/internal/domain"
	apperrors "github.com/spec-kit/ticket-management/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "this-is-a-test-secret-with-32-bytes!",
			SessionTokenTTLMin: 15,
			BcryptCost:         bcrypt.MinCost,
		},
	}
}

func TestRegisterCustomerHashesPassword(t *testing.T) {
	var stored *domain.Customer
	customers := &mockCustomerRepository{
		createFunc: func(_ context.Context, customer *domain.Customer) error {
			customer.ID = "c1"
			stored = customer
			return nil
		},
	}
	svc := NewAccountService(testConfig(), AccountDependencies{
		CustomerRepo: customers,
		EngineerRepo: &mockEngineerRepository{},
	})

	customer, err := svc.RegisterCustomer(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("RegisterCustomer: %v", err)
	}
	if customer.Role != domain.RoleCustomer {
		t.Errorf("role = %s, want CUSTOMER", customer.Role)
	}
	if stored.PasswordHash == "pw1" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterCustomerValidation(t *testing.T) {
	svc := NewAccountService(testConfig(), AccountDependencies{
		CustomerRepo: &mockCustomerRepository{},
		EngineerRepo: &mockEngineerRepository{},
	})

	cases := []struct{ username, password string }{
		{"", "pw"},
		{"  ", "pw"},
		{"alice", ""},
	}
	for _, tc := range cases {
		if _, err := svc.RegisterCustomer(context.Background(), tc.username, tc.password); err == nil {
			t.Errorf("RegisterCustomer(%q, %q) expected validation error", tc.username, tc.password)
		}
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	engineers := &mockEngineerRepository{
		createFunc: func(context.Context, *domain.Engineer) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "engineers_username_key"}
		},
	}
	svc := NewAccountService(testConfig(), AccountDependencies{
		CustomerRepo: &mockCustomerRepository{},
		EngineerRepo: engineers,
	})

	_, err := svc.RegisterEngineer(context.Background(), "bob", "pw2")
	if !apperrors.IsConflict(err) {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestUpdateCustomerRehashesPassword(t *testing.T) {
	existing := &domain.Customer{
		ID:           "c1",
		Username:     "alice",
		PasswordHash: "$2a$04$oldhasholdhasholdhashuOldHashOldHashOldHashOldHash",
		Role:         domain.RoleCustomer,
	}
	var updated *domain.Customer
	customers := &mockCustomerRepository{
		getByIDFunc: func(_ context.Context, id string) (*domain.Customer, error) {
			if id != existing.ID {
				return nil, pgx.ErrNoRows
			}
			copied := *existing
			return &copied, nil
		},
		updateFunc: func(_ context.Context, customer *domain.Customer) error {
			updated = customer
			return nil
		},
	}
	svc := NewAccountService(testConfig(), AccountDependencies{
		CustomerRepo: customers,
		EngineerRepo: &mockEngineerRepository{},
	})

	customer, err := svc.UpdateCustomer(context.Background(), "c1", "alice2", "newpw")
	if err != nil {
		t.Fatalf("UpdateCustomer: %v", err)
	}
	if customer.Username != "alice2" {
		t.Errorf("username = %s, want alice2", customer.Username)
	}
	if updated.PasswordHash == existing.PasswordHash {
		t.Error("password was not re-hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpw")); err != nil {
		t.Errorf("new hash does not verify: %v", err)
	}
}

func TestUpdateAccountNotFound(t *testing.T) {
	svc := NewAccountService(testConfig(), AccountDependencies{
		CustomerRepo: &mockCustomerRepository{
			getByIDFunc: func(context.Context, string) (*domain.Customer, error) {
				return nil, pgx.ErrNoRows
			},
		},
		EngineerRepo: &mockEngineerRepository{
			getByIDFunc: func(context.Context, string) (*domain.Engineer, error) {
				return nil, pgx.ErrNoRows
			},
		},
	})

	if _, err := svc.UpdateCustomer(context.Background(), "missing", "x", "pw"); !apperrors.IsNotFound(err) {
		t.Errorf("UpdateCustomer err = %v, want not found", err)
	}
	if _, err := svc.UpdateEngineer(context.Background(), "missing", "x", "pw"); !apperrors.IsNotFound(err) {
		t.Errorf("UpdateEngineer err = %v, want not found", err)
	}
}

func TestDeleteEngineer(t *testing.T) {
	deleted := ""
	engineers := &mockEngineerRepository{
		deleteFunc: func(_ context.Context, id string) error {
			if id != "e1" {
				return pgx.ErrNoRows
			}
			deleted = id
			return nil
		},
	}
	svc := NewAccountService(testConfig(), AccountDependencies{
		CustomerRepo: &mockCustomerRepository{},
		EngineerRepo: engineers,
	})

	if err := svc.DeleteEngineer(context.Background(), "e1"); err != nil {
		t.Fatalf("DeleteEngineer: %v", err)
	}
	if deleted != "e1" {
		t.Errorf("deleted = %q, want e1", deleted)
	}
	if err := svc.DeleteEngineer(context.Background(), "missing"); !apperrors.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}
