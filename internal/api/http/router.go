package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jackscave/service-desk/internal/api/http/handlers"
	"github.com/jackscave/service-desk/internal/observability"
	"github.com/jackscave/service-desk/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Tickets     *handlers.TicketsHandler
	Catalog     *handlers.CatalogHandler
	Session     *handlers.SessionHandler
	SessionMW   *session.Middleware
	Metrics     *observability.Metrics
	MetricsPath string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	if cfg.Metrics != nil && cfg.MetricsPath != "" {
		app.Get(cfg.MetricsPath, adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	api := app.Group("/api", cfg.SessionMW.Handle)
	api.Get("/categories", cfg.Catalog.Categories)
	api.Get("/status-columns", cfg.Catalog.StatusColumns)
	api.Get("/priorities", cfg.Catalog.Priorities)

	api.Get("/session", cfg.Session.Current)
	api.Post("/session/role", cfg.Session.SwitchRole)

	api.Get("/board", cfg.Tickets.Board)
	api.Get("/stats", cfg.Tickets.Stats)
	api.Get("/tickets", cfg.Tickets.ListTickets)
	api.Post("/tickets", cfg.Tickets.CreateTicket)
	api.Get("/tickets/:id", cfg.Tickets.GetTicket)
	api.Patch("/tickets/:id/status", cfg.Tickets.UpdateStatus)
	api.Post("/tickets/:id/comments", cfg.Tickets.AddComment)
}
