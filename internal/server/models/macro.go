package models

// Macro is a named, owner-scoped sequence of command lines replayed by the
// client interpreter.
type Macro struct {
	ID     string
	UserID string
	Name   string
	Steps  []string
}
