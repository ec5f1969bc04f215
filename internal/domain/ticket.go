package domain

import (
	"slices"
	"time"
)

// TicketStatus enumerates the board columns a ticket can occupy.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in-progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// TicketPriority enumerates severity levels inherited from a category.
type TicketPriority string

const (
	TicketPriorityCritical TicketPriority = "critical"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityLow      TicketPriority = "low"
)

// Ticket is the aggregate for a reported issue.
type Ticket struct {
	ID          int64
	Title       string
	Description string
	CategoryID  string
	Priority    TicketPriority
	Status      TicketStatus
	Tags        []string
	Comments    []Comment
	Reporter    string
	CreatedAt   time.Time
}

// Clone returns a copy that shares no slices with t. Nil and empty slices
// are kept as they are.
func (t Ticket) Clone() Ticket {
	out := t
	out.Tags = slices.Clone(t.Tags)
	out.Comments = slices.Clone(t.Comments)
	return out
}
