package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/errors"
	"pantry/internal/infra/persistence/model"
)

// foodRepository implements the repository.FoodRepository interface on a
// MongoDB collection.
type foodRepository struct {
	coll *mongo.Collection
}

// NewFoodRepository is the constructor for foodRepository.
// It returns the repository as a repository.FoodRepository interface, adhering to dependency inversion.
func NewFoodRepository(db *mongo.Database) repository.FoodRepository {
	return &foodRepository{
		coll: db.Collection(foodCollection),
	}
}

// Create inserts a new food document and re-reads it by the assigned
// identifier so the caller sees exactly what was persisted.
func (repo *foodRepository) Create(ctx context.Context, food *entity.Food) (*entity.Food, error) {
	result, err := repo.coll.InsertOne(ctx, model.FromFoodEntity(food))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert food")
	}

	var created model.FoodModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to re-read created food")
	}

	return created.ToEntity(), nil
}

// FindByID retrieves a single food record by its external identifier.
func (repo *foodRepository) FindByID(ctx context.Context, id string) (*entity.Food, error) {
	objectID, err := DecodeObjectID(id)
	if err != nil {
		return nil, err
	}

	var found model.FoodModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&found); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find food by id")
	}

	return found.ToEntity(), nil
}

// FindAll retrieves up to limit food records in insertion order.
func (repo *foodRepository) FindAll(ctx context.Context, limit int) ([]*entity.Food, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := repo.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list food")
	}

	var docs []model.FoodModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode food listing")
	}

	foods := make([]*entity.Food, 0, len(docs))
	for i := range docs {
		foods = append(foods, docs[i].ToEntity())
	}

	return foods, nil
}

// ApplyChanges atomically applies a ChangeSet with findOneAndUpdate and
// returns the post-update document.
func (repo *foodRepository) ApplyChanges(ctx context.Context, id string, changes entity.ChangeSet) (*entity.Food, error) {
	objectID, err := DecodeObjectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.FoodModel
	err = repo.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M(changes)},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update food")
	}

	return updated.ToEntity(), nil
}

// Delete removes the food record with the given identifier.
func (repo *foodRepository) Delete(ctx context.Context, id string) error {
	objectID, err := DecodeObjectID(id)
	if err != nil {
		return err
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete food")
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}
