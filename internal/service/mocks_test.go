package service

import (
	"context"
	"errors"

	"github.com/spec-kit/ticket-management/internal/domain"
)

// =============================================================================
// Mock CustomerRepository
// =============================================================================

type mockCustomerRepository struct {
	createFunc        func(ctx context.Context, customer *domain.Customer) error
	updateFunc        func(ctx context.Context, customer *domain.Customer) error
	getByIDFunc       func(ctx context.Context, id string) (*domain.Customer, error)
	getByUsernameFunc func(ctx context.Context, username string) (*domain.Customer, error)
	listFunc          func(ctx context.Context) ([]domain.Customer, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, customer)
	}
	return errors.New("not implemented")
}

func (m *mockCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, customer)
	}
	return errors.New("not implemented")
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerRepository) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Mock EngineerRepository
// =============================================================================

type mockEngineerRepository struct {
	createFunc        func(ctx context.Context, engineer *domain.Engineer) error
	updateFunc        func(ctx context.Context, engineer *domain.Engineer) error
	deleteFunc        func(ctx context.Context, id string) error
	getByIDFunc       func(ctx context.Context, id string) (*domain.Engineer, error)
	getByUsernameFunc func(ctx context.Context, username string) (*domain.Engineer, error)
	listFunc          func(ctx context.Context) ([]domain.Engineer, error)
}

func (m *mockEngineerRepository) Create(ctx context.Context, engineer *domain.Engineer) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, engineer)
	}
	return errors.New("not implemented")
}

func (m *mockEngineerRepository) Update(ctx context.Context, engineer *domain.Engineer) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, engineer)
	}
	return errors.New("not implemented")
}

func (m *mockEngineerRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockEngineerRepository) GetByID(ctx context.Context, id string) (*domain.Engineer, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEngineerRepository) GetByUsername(ctx context.Context, username string) (*domain.Engineer, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockEngineerRepository) List(ctx context.Context) ([]domain.Engineer, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Mock TicketRepository
// =============================================================================

type mockTicketRepository struct {
	createFunc      func(ctx context.Context, ticket *domain.Ticket) error
	updateFunc      func(ctx context.Context, ticket *domain.Ticket) error
	acknowledgeFunc func(ctx context.Context, ticketID, engineerID string) (*domain.Ticket, error)
	deleteFunc      func(ctx context.Context, id string) error
	getByIDFunc     func(ctx context.Context, id string) (*domain.Ticket, error)
	listFunc        func(ctx context.Context) ([]domain.Ticket, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, ticket)
	}
	return errors.New("not implemented")
}

func (m *mockTicketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, ticket)
	}
	return errors.New("not implemented")
}

func (m *mockTicketRepository) Acknowledge(ctx context.Context, ticketID, engineerID string) (*domain.Ticket, error) {
	if m.acknowledgeFunc != nil {
		return m.acknowledgeFunc(ctx, ticketID, engineerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}
