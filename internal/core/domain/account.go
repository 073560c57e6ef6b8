package domain

import (
	"errors"
	"time"
)

var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrValidation = errors.New("validation failed")

// Account models a locally registered user profile.
//
// The password is stored as an opaque clear-text string (demo-only storage,
// by contract) and must never leave the store layer: anything handed to the
// session or a caller goes through Sanitized first.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Sanitized returns a copy of the account with the password cleared.
func (a Account) Sanitized() Account {
	a.Password = ""
	return a
}
