// Package model contains the persistence models mapped to MongoDB documents.
// They are kept separate from the domain entities so bson concerns never leak
// into the domain layer.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pantry/internal/domain/entity"
)

// FoodModel is the MongoDB document shape of a food record.
type FoodModel struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Description    string             `bson:"description"`
	AmountPerScoop float64            `bson:"amount_per_scoop"`
	CreatedAt      time.Time          `bson:"created_at"`
}

// ToEntity maps the persistence model back to a pure domain entity.
func (m *FoodModel) ToEntity() *entity.Food {
	return &entity.Food{
		ID:             m.ID.Hex(),
		Name:           m.Name,
		Description:    m.Description,
		AmountPerScoop: m.AmountPerScoop,
		CreatedAt:      m.CreatedAt,
	}
}

// FromFoodEntity maps a domain entity to its persistence model. The identifier
// is left zero so MongoDB assigns one on insert.
func FromFoodEntity(food *entity.Food) *FoodModel {
	return &FoodModel{
		Name:           food.Name,
		Description:    food.Description,
		AmountPerScoop: food.AmountPerScoop,
		CreatedAt:      food.CreatedAt,
	}
}
