package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	domainerrors "pantry/internal/domain/errors"
)

// DecodeObjectID converts the external string form of a record identifier to
// the driver's native ObjectID. Anything that is not a well-formed 24-char
// hex ObjectID fails with the domain's invalid-identifier error, before any
// storage call is made.
func DecodeObjectID(external string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(external)
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrInvalidIdentifier.WrapMessage("not a valid object id: " + external)
	}

	return id, nil
}

// EncodeObjectID converts a native ObjectID to its external string form.
// It is total and never fails.
func EncodeObjectID(id primitive.ObjectID) string {
	return id.Hex()
}
