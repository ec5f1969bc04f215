package domain

// Category is static reference data that classifies tickets.
type Category struct {
	ID          string
	Name        string
	Priority    TicketPriority
	Color       string
	Description string
	SLATime     string
}

// StatusColumn is one fixed stage of the board.
type StatusColumn struct {
	ID   TicketStatus
	Name string
}
