package repository

import "errors"

var (
	// ErrTicketNotFound is returned when a ticket id does not exist. The
	// collection is never mutated when it is returned.
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrInvalidTicket is returned when creation input fails validation.
	ErrInvalidTicket = errors.New("invalid ticket")
	// ErrInvalidStatus is returned for statuses outside the board columns.
	ErrInvalidStatus = errors.New("invalid ticket status")
)
