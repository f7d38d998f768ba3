package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ticket-management/internal/domain"
	"github.com/spec-kit/ticket-management/internal/events"
	"github.com/spec-kit/ticket-management/internal/repository"
	apperrors "github.com/spec-kit/ticket-management/pkg/util"
)

// TicketService coordinates the ticket lifecycle: creation, acknowledgment,
// generic update, deletion and reads.
type TicketService struct {
	tickets    repository.TicketRepository
	customers  repository.CustomerRepository
	engineers  repository.EngineerRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo   repository.TicketRepository
	CustomerRepo repository.CustomerRepository
	EngineerRepo repository.EngineerRepository
	Dispatcher   events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		customers:  deps.CustomerRepo,
		engineers:  deps.EngineerRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket files a ticket for a customer. When an engineer id is supplied
// the ticket is acknowledged immediately; otherwise it starts as CREATED with
// no acknowledger.
func (s *TicketService) CreateTicket(ctx context.Context, customerID, description string, engineerID *string) (*domain.Ticket, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}

	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": customerID})
		}
		return nil, apperrors.MapError(err)
	}

	ticket := &domain.Ticket{
		Description: strings.TrimSpace(description),
		Status:      domain.TicketStatusCreated,
		CreatedBy:   customer.ID,
	}

	if engineerID != nil {
		engineer, err := s.engineers.GetByID(ctx, *engineerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("engineer", map[string]any{"id": *engineerID})
			}
			return nil, apperrors.MapError(err)
		}
		ticket.Status = domain.TicketStatusAcknowledged
		ticket.AcknowledgedBy = &engineer.ID
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			CustomerID:  ticket.CreatedBy,
			EngineerID:  ticket.AcknowledgedBy,
			Status:      ticket.Status,
			Description: ticket.Description,
		},
	})
	return ticket, nil
}

// AcknowledgeTicket assigns an engineer and marks the ticket ACKNOWLEDGED.
// Re-acknowledging an already acknowledged ticket reassigns ownership; the
// last writer wins and no history is kept.
func (s *TicketService) AcknowledgeTicket(ctx context.Context, ticketID, engineerID string) (*domain.Ticket, error) {
	engineer, err := s.engineers.GetByID(ctx, engineerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("engineer", map[string]any{"id": engineerID})
		}
		return nil, apperrors.MapError(err)
	}

	ticket, err := s.tickets.Acknowledge(ctx, ticketID, engineer.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAcknowledged,
		TicketID: ticket.ID,
		Payload:  events.TicketAcknowledgedPayload{EngineerID: engineer.ID},
	})
	return ticket, nil
}

// UpdateTicket overwrites description and status. It never touches CreatedBy
// or AcknowledgedBy, so setting ACKNOWLEDGED here without an acknowledger is
// possible; AcknowledgeTicket is the path that keeps both in step.
func (s *TicketService) UpdateTicket(ctx context.Context, ticketID, description string, status domain.TicketStatus) (*domain.Ticket, error) {
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}
	if !domain.KnownStatus(status) {
		return nil, apperrors.NewValidationError("unknown ticket status", map[string]any{"status": status})
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}

	oldStatus := ticket.Status
	ticket.Description = strings.TrimSpace(description)
	ticket.Status = status
	if err := s.tickets.Update(ctx, ticket); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		TicketID: ticket.ID,
		Payload: events.TicketUpdatedPayload{
			OldStatus: oldStatus,
			NewStatus: ticket.Status,
		},
	})
	return ticket, nil
}

// DeleteTicket removes the ticket permanently.
func (s *TicketService) DeleteTicket(ctx context.Context, ticketID string) error {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return apperrors.MapError(err)
	}
	if err := s.tickets.Delete(ctx, ticketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: ticketID,
		Payload:  events.TicketDeletedPayload{Status: ticket.Status},
	})
	return nil
}

// GetTicket fetches a single ticket.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// ListTickets returns all tickets in primary-key order.
func (s *TicketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
