package types

import (
	"errors"
	"time"
)

// User represents an account in the users table.
//
// PasswordHash is empty on every User returned by Backend.Authenticate; the
// stored hash never leaves the storage layer.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns a copy of the user with the password hash cleared.
func (u User) Public() *User {
	u.PasswordHash = ""
	return &u
}

// ErrInvalidCredentials is returned by Authenticate for both an unknown
// username and a wrong password. The two causes are deliberately
// indistinguishable so callers cannot enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid credentials")
