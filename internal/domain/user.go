package domain

import "time"

// Role is the fixed role assigned to an account at creation.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleEngineer Role = "ENGINEER"
)

// Customer is an end-user who files tickets. Usernames are unique within
// the customers table only; the engineers table is a separate namespace.
type Customer struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Engineer is an operator who acknowledges tickets.
type Engineer struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
