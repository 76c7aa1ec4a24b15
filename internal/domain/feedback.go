package domain

import "time"

// Feedback is a single free-text entry submitted by an employee.
// Username is denormalized from the author at creation time so listings
// do not need a join against the users table.
type Feedback struct {
	ID        string
	Username  string
	Body      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
