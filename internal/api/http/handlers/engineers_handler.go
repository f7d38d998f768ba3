package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-management/internal/api/dto"
	"github.com/spec-kit/ticket-management/internal/service"
	apperrors "github.com/spec-kit/ticket-management/pkg/util"
)

// EngineersHandler manages engineer endpoints.
type EngineersHandler struct {
	accounts *service.AccountService
}

// NewEngineersHandler constructs handler.
func NewEngineersHandler(accounts *service.AccountService) *EngineersHandler {
	return &EngineersHandler{accounts: accounts}
}

// Register handles POST /engineers.
func (h *EngineersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	engineer, err := h.accounts.RegisterEngineer(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EngineerResponse(engineer)})
}

// List handles GET /engineers.
func (h *EngineersHandler) List(c *fiber.Ctx) error {
	engineers, err := h.accounts.ListEngineers(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AccountResponse, 0, len(engineers))
	for i := range engineers {
		items = append(items, dto.EngineerResponse(&engineers[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /engineers/:id.
func (h *EngineersHandler) Get(c *fiber.Ctx) error {
	engineer, err := h.accounts.GetEngineer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EngineerResponse(engineer)})
}

// Update handles PUT /engineers/:id.
func (h *EngineersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	engineer, err := h.accounts.UpdateEngineer(c.Context(), c.Params("id"), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.EngineerResponse(engineer)})
}

// Delete handles DELETE /engineers/:id.
func (h *EngineersHandler) Delete(c *fiber.Ctx) error {
	if err := h.accounts.DeleteEngineer(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
