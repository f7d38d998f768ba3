package dto

import (
	"time"

	"github.com/spec-kit/ticket-management/internal/domain"
)

// RegisterRequest is the payload for customer and engineer registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateAccountRequest replaces username and password. The password is
// always required and always re-hashed.
type UpdateAccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountResponse is the public shape of a customer or engineer record.
// Password material is never included.
type AccountResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// CustomerResponse maps a customer to its public shape.
func CustomerResponse(customer *domain.Customer) AccountResponse {
	return AccountResponse{
		ID:        customer.ID,
		Username:  customer.Username,
		Role:      customer.Role,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}

// EngineerResponse maps an engineer to its public shape.
func EngineerResponse(engineer *domain.Engineer) AccountResponse {
	return AccountResponse{
		ID:        engineer.ID,
		Username:  engineer.Username,
		Role:      engineer.Role,
		CreatedAt: engineer.CreatedAt,
		UpdatedAt: engineer.UpdatedAt,
	}
}
