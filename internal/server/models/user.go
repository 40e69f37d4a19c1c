package models

// User is an account row. Login is the immutable sign-in name; Username is
// the optional public handle used for messaging, set via the username command.
type User struct {
	ID       string
	Login    string
	Username string
	Salt     []byte
	Verifier []byte
}
