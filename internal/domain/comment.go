package domain

import "time"

// Comment is an append-only note in a ticket thread.
type Comment struct {
	User   string
	Avatar string
	Text   string
	Time   time.Time
}
