package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/lifecycle"
	"pantry/internal/domain/repository"
	"pantry/internal/errors"
	"pantry/internal/infra/persistence/model"
)

// accountRepository implements the repository.AccountRepository interface on
// a MongoDB collection. A unique index on email is the authoritative guard
// against duplicate registrations; the ExistsByEmail pre-check only improves
// error message quality.
type accountRepository struct {
	coll *mongo.Collection
}

// NewAccountRepository is the constructor for accountRepository.
// It ensures the unique email index exists before the repository is used.
func NewAccountRepository(db *mongo.Database) (repository.AccountRepository, error) {
	coll := db.Collection(accountCollection)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure unique email index")
	}

	return &accountRepository{coll: coll}, nil
}

// Create inserts a new account document and re-reads it by the assigned
// identifier. A duplicate-key rejection from the unique index maps to the
// domain's duplicate-email error.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) (*entity.Account, error) {
	result, err := repo.coll.InsertOne(ctx, model.FromAccountEntity(account))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("unique index rejected insert")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert account")
	}

	var created model.AccountModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to re-read created account")
	}

	return created.ToEntity(), nil
}

// FindByID retrieves a single account by its external identifier.
func (repo *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	objectID, err := DecodeObjectID(id)
	if err != nil {
		return nil, err
	}

	var found model.AccountModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&found); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by id")
	}

	return found.ToEntity(), nil
}

// ExistsByEmail reports whether an account with the given email exists.
func (repo *accountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check email existence")
	}

	return count > 0, nil
}

// FindAll retrieves up to limit accounts in insertion order.
func (repo *accountRepository) FindAll(ctx context.Context, limit int) ([]*entity.Account, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := repo.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list accounts")
	}

	var docs []model.AccountModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode account listing")
	}

	accounts := make([]*entity.Account, 0, len(docs))
	for i := range docs {
		accounts = append(accounts, docs[i].ToEntity())
	}

	return accounts, nil
}

// ApplyChanges atomically applies a ChangeSet with findOneAndUpdate and
// returns the post-update document.
func (repo *accountRepository) ApplyChanges(ctx context.Context, id string, changes entity.ChangeSet) (*entity.Account, error) {
	objectID, err := DecodeObjectID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.AccountModel
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
		if mongo.IsDuplicateKeyError(err) {
			return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("unique index rejected update")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	return updated.ToEntity(), nil
}

// Delete removes the account with the given identifier.
func (repo *accountRepository) Delete(ctx context.Context, id string) error {
	objectID, err := DecodeObjectID(id)
	if err != nil {
		return err
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account")
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}
