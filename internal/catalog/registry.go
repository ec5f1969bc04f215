// Package catalog holds the static reference data of the service desk: the
// category table, priority labels and the status columns of the board.
package catalog

import (
	"errors"
	"fmt"

	"github.com/jackscave/service-desk/internal/domain"
)

// ErrUnknownPriority is returned when a priority has no registered label.
var ErrUnknownPriority = errors.New("unknown priority")

// DefaultCategoryColorClass is used when a category or its color is not registered.
const DefaultCategoryColorClass = "bg-gray-500"

var defaultCategories = []domain.Category{
	{
		ID:          "availability",
		Name:        "Disponibilidad",
		Priority:    domain.TicketPriorityCritical,
		Color:       "red",
		Description: "Caídas del sistema, lentitud crítica",
		SLATime:     "1 día hábil",
	},
	{
		ID:          "functionality",
		Name:        "Funcionalidad",
		Priority:    domain.TicketPriorityHigh,
		Color:       "orange",
		Description: "Fallos en foros, publicación de artículos",
		SLATime:     "3 días hábiles",
	},
	{
		ID:          "access",
		Name:        "Acceso y Permisos",
		Priority:    domain.TicketPriorityHigh,
		Color:       "yellow",
		Description: "Problemas de login, credenciales",
		SLATime:     "3 días hábiles",
	},
	{
		ID:          "interface",
		Name:        "Interfaz y Usabilidad",
		Priority:    domain.TicketPriorityMedium,
		Color:       "blue",
		Description: "Errores visuales, diseño",
		SLATime:     "1 semana hábil",
	},
	{
		ID:          "security",
		Name:        "Seguridad",
		Priority:    domain.TicketPriorityCritical,
		Color:       "red",
		Description: "Vulnerabilidades, accesos no autorizados",
		SLATime:     "1 día hábil",
	},
}

var defaultStatusColumns = []domain.StatusColumn{
	{ID: domain.TicketStatusOpen, Name: "Abiertos"},
	{ID: domain.TicketStatusInProgress, Name: "En Progreso"},
	{ID: domain.TicketStatusResolved, Name: "Resueltos"},
	{ID: domain.TicketStatusClosed, Name: "Cerrados"},
}

// Priorities lists the four levels from most to least severe.
var Priorities = []domain.TicketPriority{
	domain.TicketPriorityCritical,
	domain.TicketPriorityHigh,
	domain.TicketPriorityMedium,
	domain.TicketPriorityLow,
}

var priorityLabels = map[domain.TicketPriority]string{
	domain.TicketPriorityCritical: "Crítico",
	domain.TicketPriorityHigh:     "Alto",
	domain.TicketPriorityMedium:   "Medio",
	domain.TicketPriorityLow:      "Bajo",
}

var priorityColorClasses = map[domain.TicketPriority]string{
	domain.TicketPriorityCritical: "bg-red-100 text-red-800 border-red-300",
	domain.TicketPriorityHigh:     "bg-orange-100 text-orange-800 border-orange-300",
	domain.TicketPriorityMedium:   "bg-yellow-100 text-yellow-800 border-yellow-300",
	domain.TicketPriorityLow:      "bg-blue-100 text-blue-800 border-blue-300",
}

var categoryColorClasses = map[string]string{
	"red":    "bg-red-500",
	"orange": "bg-orange-500",
	"yellow": "bg-yellow-500",
	"blue":   "bg-blue-500",
}

// Registry is an immutable lookup table of categories and status columns.
// It is safe for concurrent use.
type Registry struct {
	categories []domain.Category
	byID       map[string]int
	columns    []domain.StatusColumn
}

// NewRegistry returns the registry loaded with the built-in categories.
func NewRegistry() *Registry {
	return NewRegistryWith(defaultCategories)
}

// NewRegistryWith builds a registry from the given categories, keeping their order.
// Later duplicates of an id are ignored.
func NewRegistryWith(categories []domain.Category) *Registry {
	r := &Registry{
		categories: make([]domain.Category, 0, len(categories)),
		byID:       make(map[string]int, len(categories)),
		columns:    append([]domain.StatusColumn(nil), defaultStatusColumns...),
	}
	for _, cat := range categories {
		if _, exists := r.byID[cat.ID]; exists {
			continue
		}
		r.byID[cat.ID] = len(r.categories)
		r.categories = append(r.categories, cat)
	}
	return r
}

// Categories returns the registered categories in registry order.
func (r *Registry) Categories() []domain.Category {
	return append([]domain.Category(nil), r.categories...)
}

// Resolve returns the category registered under id.
func (r *Registry) Resolve(id string) (domain.Category, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Category{}, false
	}
	return r.categories[idx], true
}

// StatusColumns returns the board columns in display order.
func (r *Registry) StatusColumns() []domain.StatusColumn {
	return append([]domain.StatusColumn(nil), r.columns...)
}

// ValidStatus reports whether status is one of the board columns.
func (r *Registry) ValidStatus(status domain.TicketStatus) bool {
	for _, col := range r.columns {
		if col.ID == status {
			return true
		}
	}
	return false
}

// PriorityLabel returns the display label of a priority level.
func PriorityLabel(priority domain.TicketPriority) (string, error) {
	label, ok := priorityLabels[priority]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPriority, priority)
	}
	return label, nil
}

// PriorityColorClass maps a priority to its presentation token. Unknown
// priorities use the low-priority token.
func PriorityColorClass(priority domain.TicketPriority) string {
	if class, ok := priorityColorClasses[priority]; ok {
		return class
	}
	return priorityColorClasses[domain.TicketPriorityLow]
}

// CategoryColorClass maps a category's color to its presentation token.
func (r *Registry) CategoryColorClass(categoryID string) string {
	cat, ok := r.Resolve(categoryID)
	if !ok {
		return DefaultCategoryColorClass
	}
	if class, ok := categoryColorClasses[cat.Color]; ok {
		return class
	}
	return DefaultCategoryColorClass
}
