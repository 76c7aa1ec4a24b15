package postgres

import "time"

type userRow struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         int
	CreatedAt    time.Time
}

type feedbackRow struct {
	ID        string
	Username  string
	Body      string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
