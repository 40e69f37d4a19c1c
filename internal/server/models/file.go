package models

import "time"

// File is a record of an upload that already landed on the object store;
// URL points at the hosted location.
type File struct {
	ID        string
	UserID    string
	Name      string
	URL       string
	CreatedAt time.Time
}
