package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusCreated      TicketStatus = "CREATED"
	TicketStatusAcknowledged TicketStatus = "ACKNOWLEDGED"
)

// KnownStatus reports whether s is a member of the status enumeration.
func KnownStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusCreated, TicketStatusAcknowledged:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. CreatedBy is set once at
// creation and never reassigned; AcknowledgedBy is nil until an engineer
// acknowledges the ticket.
type Ticket struct {
	ID             string
	Description    string
	Status         TicketStatus
	CreatedBy      string
	AcknowledgedBy *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
