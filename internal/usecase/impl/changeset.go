// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"

	"pantry/internal/domain/entity"
	"pantry/internal/usecase"
)

// foodChangeSet computes the field-level diff a food partial update will
// write. Only non-null payload fields enter the set; the identifier and
// creation timestamp can never be part of it.
func foodChangeSet(input *usecase.UpdateFoodInput) entity.ChangeSet {
	changes := entity.ChangeSet{}
	if input == nil {
		return changes
	}

	if input.Name != nil {
		changes.Set("name", *input.Name)
	}
	if input.Description != nil {
		changes.Set("description", *input.Description)
	}
	if input.AmountPerScoop != nil {
		changes.Set("amount_per_scoop", *input.AmountPerScoop)
	}

	return changes
}

// accountChangeSet computes the field-level diff an account partial update
// will write. The password field is handled by the caller so only its hash
// ever enters a ChangeSet.
func accountChangeSet(input *usecase.UpdateAccountInput) entity.ChangeSet {
	changes := entity.ChangeSet{}
	if input == nil {
		return changes
	}

	if input.Email != nil {
		changes.Set("email", strings.ToLower(*input.Email))
	}
	if input.FirstName != nil {
		changes.Set("first_name", *input.FirstName)
	}
	if input.LastName != nil {
		changes.Set("last_name", *input.LastName)
	}
	if input.Title != nil {
		changes.Set("title", *input.Title)
	}
	if input.Address != nil {
		changes.Set("address", *input.Address)
	}
	if input.Favorites != nil {
		changes.Set("favorites", *input.Favorites)
	}

	return changes
}
