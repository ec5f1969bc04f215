package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jackscave/service-desk/internal/api/dto"
	"github.com/jackscave/service-desk/internal/catalog"
)

// CatalogHandler exposes the static reference data.
type CatalogHandler struct {
	registry *catalog.Registry
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(registry *catalog.Registry) *CatalogHandler {
	return &CatalogHandler{registry: registry}
}

// Categories GET /api/categories.
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	cats := h.registry.Categories()
	items := make([]dto.CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		items = append(items, categoryResponse(h.registry, cat))
	}
	return c.JSON(fiber.Map{"data": items})
}

// StatusColumns GET /api/status-columns.
func (h *CatalogHandler) StatusColumns(c *fiber.Ctx) error {
	cols := h.registry.StatusColumns()
	items := make([]dto.StatusColumnResponse, 0, len(cols))
	for _, col := range cols {
		items = append(items, dto.StatusColumnResponse{ID: col.ID, Name: col.Name})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Priorities GET /api/priorities.
func (h *CatalogHandler) Priorities(c *fiber.Ctx) error {
	items := make([]dto.PriorityResponse, 0, len(catalog.Priorities))
	for _, p := range catalog.Priorities {
		label, err := catalog.PriorityLabel(p)
		if err != nil {
			return err
		}
		items = append(items, dto.PriorityResponse{
			ID:         p,
			Label:      label,
			ColorClass: catalog.PriorityColorClass(p),
		})
	}
	return c.JSON(fiber.Map{"data": items})
}
