package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ticket-management/internal/api/http/handlers"
	"github.com/spec-kit/ticket-management/internal/auth"
	"github.com/spec-kit/ticket-management/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Customers      *handlers.CustomersHandler
	Engineers      *handlers.EngineersHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Customer registration requires the
// ENGINEER role and ticket creation the CUSTOMER role; engineer registration
// is public so the first operator can be created.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Auth.Logout)

	app.Post("/engineers", cfg.Engineers.Register)

	customers := app.Group("/customers", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	customers.Post("", auth.RequireRole(domain.RoleEngineer), cfg.Customers.Register)
	customers.Get("", cfg.Customers.List)
	customers.Get("/:id", cfg.Customers.Get)
	customers.Put("/:id", cfg.Customers.Update)

	engineers := app.Group("/engineers", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	engineers.Get("", cfg.Engineers.List)
	engineers.Get("/:id", cfg.Engineers.Get)
	engineers.Put("/:id", cfg.Engineers.Update)
	engineers.Delete("/:id", cfg.Engineers.Delete)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	tickets.Post("", auth.RequireRole(domain.RoleCustomer), cfg.Tickets.Create)
	tickets.Get("", cfg.Tickets.List)
	tickets.Get("/:id", cfg.Tickets.Get)
	tickets.Put("/:ticketId/acknowledge/:engineerId", cfg.Tickets.Acknowledge)
	tickets.Put("/:id", cfg.Tickets.Update)
	tickets.Delete("/:id", cfg.Tickets.Delete)
}
