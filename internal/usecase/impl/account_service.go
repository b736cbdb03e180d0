package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/fx"

	"pantry/config"
	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/errors"
	"pantry/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	strength    service.StrengthEvaluator
	tokens      service.TokenService
	listLimit   int
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Strength    service.StrengthEvaluator
	Tokens      service.TokenService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		strength:    params.Strength,
		tokens:      params.Tokens,
		listLimit:   params.Config.Pagination.ListLimit,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration flow: email pre-check,
// password strength check, hashing, persistence and token issuance.
// The unique index on email remains the authoritative duplicate guard; the
// pre-check only produces a friendlier error for the common case.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterAccountInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	exists, err := srv.accountRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pre-check email")
	}
	if exists {
		return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("registration pre-check")
	}

	if !srv.strength.Acceptable(input.Password) {
		srv.log(ctx).Warn("Password rejected by strength policy", slog.String("email", email))

		return nil, domainerrors.ErrPasswordStrength.WrapMessage("password below acceptance threshold")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Title:        input.Title,
		Address:      input.Address,
		Favorites:    []string{},
		CreatedAt:    time.Now().UTC(),
	}

	created, err := srv.accountRepo.Create(ctx, account)
	if err != nil {
		srv.log(ctx).Error("Failed to create account", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	accessToken, err := srv.tokens.IssueAccess(created.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}
	refreshToken, err := srv.tokens.IssueRefresh(created.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("accountID", created.ID))

	return &usecase.RegisterOutput{
		Email:        created.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Get retrieves a single account by its external identifier.
func (srv *accountService) Get(ctx context.Context, id string) (*usecase.AccountOutput, error) {
	account, err := srv.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user " + id + " not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountOutput(account), nil
}

// List retrieves a bounded page of accounts in insertion order.
func (srv *accountService) List(ctx context.Context) ([]*usecase.AccountOutput, error) {
	accounts, err := srv.accountRepo.FindAll(ctx, srv.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	outputs := make([]*usecase.AccountOutput, 0, len(accounts))
	for _, account := range accounts {
		outputs = append(outputs, toAccountOutput(account))
	}

	return outputs, nil
}

// Update applies the non-null fields of a partial update. A provided
// password is strength-checked and hashed before it enters the ChangeSet, so
// the stored field is always a hash. An empty ChangeSet degenerates to a read.
func (srv *accountService) Update(ctx context.Context, id string, input *usecase.UpdateAccountInput) (*usecase.AccountOutput, error) {
	changes := accountChangeSet(input)
	if input != nil && input.Password != nil {
		if !srv.strength.Acceptable(*input.Password) {
			return nil, domainerrors.ErrPasswordStrength.WrapMessage("password below acceptance threshold")
		}

		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		changes.Set("password", hash)
	}

	if changes.Empty() {
		return srv.Get(ctx, id)
	}

	updated, err := srv.accountRepo.ApplyChanges(ctx, id, changes)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("user " + id + " not found")
		}

		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.log(ctx).Debug("Account updated", slog.String("accountID", id), slog.Any("fields", changes.Fields()))

	return toAccountOutput(updated), nil
}

// Delete removes an account by its external identifier.
func (srv *accountService) Delete(ctx context.Context, id string) error {
	if err := srv.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("user " + id + " not found")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Debug("Account deleted", slog.String("accountID", id))

	return nil
}

func toAccountOutput(account *entity.Account) *usecase.AccountOutput {
	return &usecase.AccountOutput{
		ID:        account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Title:     account.Title,
		Address:   account.Address,
		Favorites: account.Favorites,
		CreatedAt: account.CreatedAt,
	}
}
