package repository

import (
	"context"

	"pantry/internal/domain/entity"
)

// AccountRepository defines the standard operations for account persistence.
// Email uniqueness is enforced by the storage layer through a unique index;
// the pre-check in ExistsByEmail only improves error message quality for the
// common case. The narrow check-then-insert race is resolved by the index.
type AccountRepository interface {
	// Create persists a new account and returns it as re-read from storage.
	// Returns a domain duplicate-email error when the unique index rejects
	// the insert.
	Create(ctx context.Context, account *entity.Account) (*entity.Account, error)

	// FindByID retrieves a single account by its external identifier.
	// Returns ErrNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*entity.Account, error)

	// ExistsByEmail reports whether an account with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindAll retrieves up to limit accounts in insertion order.
	FindAll(ctx context.Context, limit int) ([]*entity.Account, error)

	// ApplyChanges atomically applies a non-empty ChangeSet to the account
	// with the given identifier and returns the post-update record.
	// Returns ErrNotFound when no record matches.
	ApplyChanges(ctx context.Context, id string, changes entity.ChangeSet) (*entity.Account, error)

	// Delete removes the account with the given identifier.
	// Returns ErrNotFound when nothing was deleted.
	Delete(ctx context.Context, id string) error
}
