package dto

import (
	"time"

	"github.com/jackscave/service-desk/internal/domain"
)

// CreateTicketRequest payload. Tags is the comma-separated text of the form.
type CreateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Tags        string `json:"tags"`
}

// UpdateStatusRequest payload.
type UpdateStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// CreateCommentRequest payload.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// TicketSummary is the card shown on the board.
type TicketSummary struct {
	ID                 int64                 `json:"id"`
	Title              string                `json:"title"`
	Description        string                `json:"description"`
	Category           string                `json:"category"`
	CategoryColorClass string                `json:"category_color_class"`
	Priority           domain.TicketPriority `json:"priority"`
	PriorityLabel      string                `json:"priority_label"`
	PriorityColorClass string                `json:"priority_color_class"`
	Status             domain.TicketStatus   `json:"status"`
	Tags               []string              `json:"tags"`
	CommentCount       int                   `json:"comment_count"`
	Reporter           string                `json:"reporter"`
	CreatedAt          time.Time             `json:"created_at"`
	CreatedLabel       string                `json:"created_label"`
}

// TicketDetailResponse provides full ticket info.
type TicketDetailResponse struct {
	TicketSummary
	CategoryName string            `json:"category_name"`
	SLATime      string            `json:"sla_time"`
	Comments     []CommentResponse `json:"comments"`
}

// CommentResponse represents a thread comment.
type CommentResponse struct {
	User      string    `json:"user"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	Time      time.Time `json:"time"`
	TimeLabel string    `json:"time_label"`
}

// BoardColumnResponse is one column of the board.
type BoardColumnResponse struct {
	ID      domain.TicketStatus `json:"id"`
	Name    string              `json:"name"`
	Count   int                 `json:"count"`
	Tickets []TicketSummary     `json:"tickets"`
}
