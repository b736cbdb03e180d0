package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/errors"
)

func TestObjectID_RoundTrip(t *testing.T) {
	for range 10 {
		id := primitive.NewObjectID()

		decoded, err := DecodeObjectID(EncodeObjectID(id))
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeObjectID_Malformed(t *testing.T) {
	malformed := []string{
		"",
		"not-an-id",
		"123",
		"zzzzzzzzzzzzzzzzzzzzzzzz",               // right length, not hex
		"66a1b2c3d4e5f6a7b8c9d0e1f2",             // too long
		"66a1b2c3d4e5f6a7b8c9d0",                 // too short
		"66a1b2c3-d4e5-f6a7-b8c9-d0e1aabbccdd",   // uuid-style
	}

	for _, input := range malformed {
		id, err := DecodeObjectID(input)
		assert.Error(t, err, "expected decode failure for %q", input)
		assert.Equal(t, primitive.NilObjectID, id)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentifier))
	}
}
