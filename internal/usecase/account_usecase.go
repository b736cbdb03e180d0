package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// RegisterAccountInput defines the data required to register a new account.
// The password travels only as far as the strength check and the hasher.
type RegisterAccountInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"omitempty,min=2"`
	LastName  string `json:"last_name"`
	Title     string `json:"title"`
	Address   string `json:"address" validate:"required"`
}

// UpdateAccountInput defines a partial update. Absent or null fields are
// no-ops. A provided password goes through the same strength check and
// hashing as at registration.
type UpdateAccountInput struct {
	Email     *string   `json:"email" validate:"omitempty,email"`
	Password  *string   `json:"password" validate:"omitempty,min=1"`
	FirstName *string   `json:"first_name" validate:"omitempty,min=2"`
	LastName  *string   `json:"last_name"`
	Title     *string   `json:"title"`
	Address   *string   `json:"address"`
	Favorites *[]string `json:"favorites"`
}

// --- Output DTOs ---

// RegisterOutput returns the registered email together with the issued
// access and refresh tokens.
type RegisterOutput struct {
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccountOutput is the response shape of an account record.
// It deliberately has no password field; the stored hash never leaves the service.
type AccountOutput struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Title     string    `json:"title,omitempty"`
	Address   string    `json:"address"`
	Favorites []string  `json:"favorites"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountUsecase defines the interface for account-related business operations.
type AccountUsecase interface {
	// Register validates the payload, enforces password strength, hashes the
	// password, persists the account and issues the token pair.
	Register(ctx context.Context, input *RegisterAccountInput) (*RegisterOutput, error)

	// Get retrieves a single account by its external identifier.
	Get(ctx context.Context, id string) (*AccountOutput, error)

	// List retrieves a bounded page of accounts in insertion order.
	List(ctx context.Context) ([]*AccountOutput, error)

	// Update applies the non-null fields of a partial update and returns the
	// post-update record. An empty update returns the record unchanged.
	Update(ctx context.Context, id string, input *UpdateAccountInput) (*AccountOutput, error)

	// Delete removes an account by its external identifier.
	Delete(ctx context.Context, id string) error
}
