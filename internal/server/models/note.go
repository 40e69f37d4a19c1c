package models

import "time"

// Note titles are unique per user; content is optional.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
}
