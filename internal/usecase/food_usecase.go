// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// CreateFoodInput defines the data required to create a food record.
//
// Example: {"name": "Basmati Rice", "description": "Long grain foreign rice
// from Asia", "amount_per_scoop": 1550.21}
type CreateFoodInput struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description" validate:"required"`
	AmountPerScoop float64 `json:"amount_per_scoop" validate:"required,gt=0"`
}

// UpdateFoodInput defines a partial update. Absent or null fields are no-ops.
type UpdateFoodInput struct {
	Name           *string  `json:"name" validate:"omitempty,min=1"`
	Description    *string  `json:"description"`
	AmountPerScoop *float64 `json:"amount_per_scoop" validate:"omitempty,gt=0"`
}

// --- Output DTOs ---

// FoodOutput is the response shape of a food record.
type FoodOutput struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	AmountPerScoop float64   `json:"amount_per_scoop"`
	CreatedAt      time.Time `json:"created_at"`
}

// FoodUsecase defines the interface for food-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type FoodUsecase interface {
	// Create validates and persists a new food record.
	Create(ctx context.Context, input *CreateFoodInput) (*FoodOutput, error)

	// Get retrieves a single food record by its external identifier.
	Get(ctx context.Context, id string) (*FoodOutput, error)

	// List retrieves a bounded page of food records in insertion order.
	List(ctx context.Context) ([]*FoodOutput, error)

	// Update applies the non-null fields of a partial update and returns the
	// post-update record. An empty update returns the record unchanged.
	Update(ctx context.Context, id string, input *UpdateFoodInput) (*FoodOutput, error)

	// Delete removes a food record by its external identifier.
	Delete(ctx context.Context, id string) error
}
