package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// TicketCounter reports how many tickets the store holds.
type TicketCounter interface {
	Len() int
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	tickets     TicketCounter
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, tickets TicketCounter) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, tickets: tickets}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness. The store lives in process, so the service is
// ready once it has been constructed.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	if h.tickets == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "ticket store not initialized",
			},
		})
	}
	return c.JSON(fiber.Map{
		"status":  "ready",
		"tickets": h.tickets.Len(),
	})
}
