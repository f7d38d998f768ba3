package events

import (
	"time"

	"github.com/spec-kit/ticket-management/internal/domain"
)

// EventType identifies the kind of lifecycle event.
type EventType string

const (
	EventTicketCreated      EventType = "ticket.created"
	EventTicketAcknowledged EventType = "ticket.acknowledged"
	EventTicketUpdated      EventType = "ticket.updated"
	EventTicketDeleted      EventType = "ticket.deleted"
)

// Event is published by the ticket service after each successful write.
type Event struct {
	ID        string
	Type      EventType
	TicketID  string
	Timestamp time.Time
	Payload   any
}

// TicketCreatedPayload accompanies EventTicketCreated.
type TicketCreatedPayload struct {
	CustomerID  string
	EngineerID  *string
	Status      domain.TicketStatus
	Description string
}

// TicketAcknowledgedPayload accompanies EventTicketAcknowledged.
type TicketAcknowledgedPayload struct {
	EngineerID string
}

// TicketUpdatedPayload accompanies EventTicketUpdated.
type TicketUpdatedPayload struct {
	OldStatus domain.TicketStatus
	NewStatus domain.TicketStatus
}

// TicketDeletedPayload accompanies EventTicketDeleted.
type TicketDeletedPayload struct {
	Status domain.TicketStatus
}
