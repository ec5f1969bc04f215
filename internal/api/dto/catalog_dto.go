package dto

import "github.com/jackscave/service-desk/internal/domain"

// CategoryResponse describes one registered category.
type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Priority      domain.TicketPriority `json:"priority"`
	PriorityLabel string                `json:"priority_label"`
	Color         string                `json:"color"`
	ColorClass    string                `json:"color_class"`
	Description   string                `json:"description"`
	SLATime       string                `json:"sla_time"`
}

// StatusColumnResponse describes one board column.
type StatusColumnResponse struct {
	ID   domain.TicketStatus `json:"id"`
	Name string              `json:"name"`
}

// PriorityResponse describes one priority level.
type PriorityResponse struct {
	ID         domain.TicketPriority `json:"id"`
	Label      string                `json:"label"`
	ColorClass string                `json:"color_class"`
}
