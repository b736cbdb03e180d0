package entity

import (
	"time"
)

// Account represents a registered user account.
// PasswordHash only ever holds the output of the password hasher; the
// plaintext password never reaches this entity.
type Account struct {
	ID           string    // External string form of the storage identifier. Empty until persisted.
	Email        string    // Login identifier. Stored lowercased, unique across all accounts.
	PasswordHash string    // Salted bcrypt hash of the account password.
	FirstName    string    // Optional. When present, must be at least 2 characters.
	LastName     string    // Optional.
	Title        string    // Optional, e.g. "Mrs".
	Address      string    // Required contact address.
	Favorites    []string  // Ordered list of favorite food references. Defaults to empty.
	CreatedAt    time.Time // Set once at creation, immutable thereafter.
}
