package dto

import (
	"time"

	"github.com/spec-kit/ticket-management/internal/domain"
)

// CreateTicketRequest payload. EngineerID, when present, acknowledges the
// ticket at creation time.
type CreateTicketRequest struct {
	Description string  `json:"description"`
	EngineerID  *string `json:"engineer_id,omitempty"`
}

// UpdateTicketRequest overwrites description and status.
type UpdateTicketRequest struct {
	Description string              `json:"description"`
	Status      domain.TicketStatus `json:"status"`
}

// TicketResponse is the public shape of a ticket.
type TicketResponse struct {
	ID             string              `json:"id"`
	Description    string              `json:"description"`
	Status         domain.TicketStatus `json:"status"`
	CreatedBy      string              `json:"created_by"`
	AcknowledgedBy *string             `json:"acknowledged_by"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// TicketFromDomain maps a ticket to its public shape.
func TicketFromDomain(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:             ticket.ID,
		Description:    ticket.Description,
		Status:         ticket.Status,
		CreatedBy:      ticket.CreatedBy,
		AcknowledgedBy: ticket.AcknowledgedBy,
		CreatedAt:      ticket.CreatedAt,
		UpdatedAt:      ticket.UpdatedAt,
	}
}
