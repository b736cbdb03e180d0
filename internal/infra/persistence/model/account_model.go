package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pantry/internal/domain/entity"
)

// AccountModel is the MongoDB document shape of an account record.
// The password field only ever holds a bcrypt hash.
type AccountModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	FirstName    string             `bson:"first_name,omitempty"`
	LastName     string             `bson:"last_name,omitempty"`
	Title        string             `bson:"title,omitempty"`
	Address      string             `bson:"address"`
	Favorites    []string           `bson:"favorites"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// ToEntity maps the persistence model back to a pure domain entity.
func (m *AccountModel) ToEntity() *entity.Account {
	favorites := m.Favorites
	if favorites == nil {
		favorites = []string{}
	}

	return &entity.Account{
		ID:           m.ID.Hex(),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Title:        m.Title,
		Address:      m.Address,
		Favorites:    favorites,
		CreatedAt:    m.CreatedAt,
	}
}

// FromAccountEntity maps a domain entity to its persistence model. The
// identifier is left zero so MongoDB assigns one on insert.
func FromAccountEntity(account *entity.Account) *AccountModel {
	favorites := account.Favorites
	if favorites == nil {
		favorites = []string{}
	}

	return &AccountModel{
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Title:        account.Title,
		Address:      account.Address,
		Favorites:    favorites,
		CreatedAt:    account.CreatedAt,
	}
}
