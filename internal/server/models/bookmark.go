package models

// Bookmark is an owner-scoped name→URL pair.
type Bookmark struct {
	ID     string
	UserID string
	Name   string
	URL    string
}
