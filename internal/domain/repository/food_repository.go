// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pantry/internal/domain/entity"
)

// ErrNotFound is a domain-specific error returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// FoodRepository defines the standard operations for food persistence.
// The application layer depends on this interface, not the concrete implementation.
type FoodRepository interface {
	// Create persists a new food record and returns it as re-read from
	// storage, with the assigned identifier and creation timestamp.
	Create(ctx context.Context, food *entity.Food) (*entity.Food, error)

	// FindByID retrieves a single food record by its external identifier.
	// Returns ErrNotFound when no record matches.
	FindByID(ctx context.Context, id string) (*entity.Food, error)

	// FindAll retrieves up to limit records in insertion order.
	FindAll(ctx context.Context, limit int) ([]*entity.Food, error)

	// ApplyChanges atomically applies a non-empty ChangeSet to the record
	// with the given identifier and returns the post-update record.
	// Returns ErrNotFound when no record matches.
	ApplyChanges(ctx context.Context, id string, changes entity.ChangeSet) (*entity.Food, error)

	// Delete removes the record with the given identifier.
	// Returns ErrNotFound when nothing was deleted.
	Delete(ctx context.Context, id string) error
}
