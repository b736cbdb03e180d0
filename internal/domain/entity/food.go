// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Food is a single item in the pantry catalog.
// The ID is assigned by the storage layer on creation and is opaque to callers.
type Food struct {
	ID             string    // External string form of the storage identifier. Empty until persisted.
	Name           string    // Display name of the food item, e.g. "Basmati Rice".
	Description    string    // Free-form description of the item.
	AmountPerScoop float64   // Serving amount per scoop. Always > 0 for a persisted record.
	CreatedAt      time.Time // Set once at creation, immutable thereafter.
}
