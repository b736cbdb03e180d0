package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"pantry/config"
	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/errors"
	"pantry/internal/usecase"
)

// foodService implements the FoodUsecase interface.
type foodService struct {
	foodRepo  repository.FoodRepository
	listLimit int
	logger    *slog.Logger
}

// FoodServiceParams holds dependencies for foodService, injected by Fx.
type FoodServiceParams struct {
	fx.In

	FoodRepo repository.FoodRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewFoodService is the constructor for foodService. It receives all dependencies as interfaces.
func NewFoodService(params FoodServiceParams) usecase.FoodUsecase {
	return &foodService{
		foodRepo:  params.FoodRepo,
		listLimit: params.Config.Pagination.ListLimit,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *foodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a validated food record and returns it as stored, with the
// assigned identifier and creation timestamp.
func (srv *foodService) Create(ctx context.Context, input *usecase.CreateFoodInput) (*usecase.FoodOutput, error) {
	food := &entity.Food{
		Name:           input.Name,
		Description:    input.Description,
		AmountPerScoop: input.AmountPerScoop,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := srv.foodRepo.Create(ctx, food)
	if err != nil {
		srv.log(ctx).Error("Failed to create food", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create food")
	}

	srv.log(ctx).Debug("Food created", slog.String("foodID", created.ID))

	return toFoodOutput(created), nil
}

// Get retrieves a single food record by its external identifier.
func (srv *foodService) Get(ctx context.Context, id string) (*usecase.FoodOutput, error) {
	food, err := srv.foodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("food " + id + " not found")
		}

		return nil, errors.Wrap(err, "failed to find food")
	}

	return toFoodOutput(food), nil
}

// List retrieves a bounded page of food records in insertion order.
func (srv *foodService) List(ctx context.Context) ([]*usecase.FoodOutput, error) {
	foods, err := srv.foodRepo.FindAll(ctx, srv.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list food")
	}

	outputs := make([]*usecase.FoodOutput, 0, len(foods))
	for _, food := range foods {
		outputs = append(outputs, toFoodOutput(food))
	}

	return outputs, nil
}

// Update applies the non-null fields of a partial update. An empty ChangeSet
// means there is nothing to write, so the existing record is fetched and
// returned unchanged.
func (srv *foodService) Update(ctx context.Context, id string, input *usecase.UpdateFoodInput) (*usecase.FoodOutput, error) {
	changes := foodChangeSet(input)
	if changes.Empty() {
		return srv.Get(ctx, id)
	}

	updated, err := srv.foodRepo.ApplyChanges(ctx, id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("food " + id + " not found")
		}

		return nil, errors.Wrap(err, "failed to update food")
	}

	srv.log(ctx).Debug("Food updated", slog.String("foodID", id), slog.Any("fields", changes.Fields()))

	return toFoodOutput(updated), nil
}

// Delete removes a food record by its external identifier.
func (srv *foodService) Delete(ctx context.Context, id string) error {
	if err := srv.foodRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("food " + id + " not found")
		}

		return errors.Wrap(err, "failed to delete food")
	}

	srv.log(ctx).Debug("Food deleted", slog.String("foodID", id))

	return nil
}

func toFoodOutput(food *entity.Food) *usecase.FoodOutput {
	return &usecase.FoodOutput{
		ID:             food.ID,
		Name:           food.Name,
		Description:    food.Description,
		AmountPerScoop: food.AmountPerScoop,
		CreatedAt:      food.CreatedAt,
	}
}
