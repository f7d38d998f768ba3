package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-management/internal/api/dto"
	"github.com/spec-kit/ticket-management/internal/service"
	apperrors "github.com/spec-kit/ticket-management/pkg/util"
)

// CustomersHandler manages customer endpoints. Registration is restricted to
// engineers at the route level; customer deletion is not exposed.
type CustomersHandler struct {
	accounts *service.AccountService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(accounts *service.AccountService) *CustomersHandler {
	return &CustomersHandler{accounts: accounts}
}

// Register handles POST /customers.
func (h *CustomersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	customer, err := h.accounts.RegisterCustomer(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CustomerResponse(customer)})
}

// List handles GET /customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.accounts.ListCustomers(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AccountResponse, 0, len(customers))
	for i := range customers {
		items = append(items, dto.CustomerResponse(&customers[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	customer, err := h.accounts.GetCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CustomerResponse(customer)})
}

// Update handles PUT /customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	customer, err := h.accounts.UpdateCustomer(c.Context(), c.Params("id"), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CustomerResponse(customer)})
}
