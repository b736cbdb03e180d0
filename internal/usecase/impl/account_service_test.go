package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"pantry/config"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	mockRepo "pantry/internal/mocks/repository"
	mockService "pantry/internal/mocks/service"
	"pantry/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockService.MockPasswordHasher
	strength    *mockService.MockStrengthEvaluator
	tokens      *mockService.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	strength := mockService.NewMockStrengthEvaluator(t)
	tokens := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Pagination: &config.PaginationConfig{ListLimit: testListLimit},
	}
	service := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Strength:    strength,
		Tokens:      tokens,
		Config:      cfg,
		Logger:      logger,
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
		strength:    strength,
		tokens:      tokens,
	}
}

func registerInput() *usecase.RegisterAccountInput {
	return &usecase.RegisterAccountInput{
		Email:    "Zinny21@Gmail.com",
		Password: "correct horse battery staple",
		Address:  "1 Example Street",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := registerInput()

	fx.accountRepo.EXPECT().
		ExistsByEmail(ctx, "zinny21@gmail.com").
		Return(false, nil)
	fx.strength.EXPECT().
		Acceptable(input.Password).
		Return(true)
	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("$2a$10$hash", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		RunAndReturn(func(_ context.Context, account *entity.Account) (*entity.Account, error) {
			created := *account
			created.ID = "66e8a1f2b3c4d5e6f7a8b9c0"

			return &created, nil
		})
	fx.tokens.EXPECT().
		IssueAccess("zinny21@gmail.com").
		Return("access-token", nil)
	fx.tokens.EXPECT().
		IssueRefresh("zinny21@gmail.com").
		Return("refresh-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "zinny21@gmail.com", output.Email)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAccountService_Register_StoresHashNotPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := registerInput()

	fx.accountRepo.EXPECT().
		ExistsByEmail(ctx, "zinny21@gmail.com").
		Return(false, nil)
	fx.strength.EXPECT().
		Acceptable(input.Password).
		Return(true)
	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("$2a$10$hash", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		RunAndReturn(func(_ context.Context, account *entity.Account) (*entity.Account, error) {
			assert.Equal(t, "$2a$10$hash", account.PasswordHash)
			assert.NotEqual(t, input.Password, account.PasswordHash)
			assert.NotNil(t, account.Favorites)
			assert.False(t, account.CreatedAt.IsZero())

			return account, nil
		})
	fx.tokens.EXPECT().
		IssueAccess("zinny21@gmail.com").
		Return("access-token", nil)
	fx.tokens.EXPECT().
		IssueRefresh("zinny21@gmail.com").
		Return("refresh-token", nil)

	_, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		ExistsByEmail(ctx, "zinny21@gmail.com").
		Return(true, nil)

	output, err := fx.service.Register(ctx, registerInput())

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := registerInput()
	input.Password = "pass1234"

	fx.accountRepo.EXPECT().
		ExistsByEmail(ctx, "zinny21@gmail.com").
		Return(false, nil)
	fx.strength.EXPECT().
		Acceptable("pass1234").
		Return(false)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_CreateError(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := registerInput()

	fx.accountRepo.EXPECT().
		ExistsByEmail(ctx, "zinny21@gmail.com").
		Return(false, nil)
	fx.strength.EXPECT().
		Acceptable(input.Password).
		Return(true)
	fx.hasher.EXPECT().
		Hash(input.Password).
		Return("$2a$10$hash", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("index violation"))

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
	fx.tokens.AssertNotCalled(t, "IssueAccess", mock.Anything)
}

func TestAccountService_Get_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	stored := &entity.Account{
		ID:           "66e8a1f2b3c4d5e6f7a8b9c0",
		Email:        "zinny21@gmail.com",
		PasswordHash: "$2a$10$hash",
		FirstName:    "Ezinne",
		Favorites:    []string{"spinach"},
		CreatedAt:    time.Now().UTC(),
	}

	fx.accountRepo.EXPECT().
		FindByID(ctx, stored.ID).
		Return(stored, nil)

	output, err := fx.service.Get(ctx, stored.ID)

	require.NoError(t, err)
	assert.Equal(t, "zinny21@gmail.com", output.Email)
	assert.Equal(t, []string{"spinach"}, output.Favorites)
}

func TestAccountService_Get_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByID(ctx, "66e8a1f2b3c4d5e6f7a8b9c0").
		Return(nil, repository.ErrNotFound)

	output, err := fx.service.Get(ctx, "66e8a1f2b3c4d5e6f7a8b9c0")

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAccountService_List_PassesConfiguredLimit(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	stored := []*entity.Account{
		{ID: "66e8a1f2b3c4d5e6f7a8b9c0", Email: "a@example.com"},
		{ID: "66e8a1f2b3c4d5e6f7a8b9c1", Email: "b@example.com"},
	}

	fx.accountRepo.EXPECT().
		FindAll(ctx, testListLimit).
		Return(stored, nil)

	outputs, err := fx.service.List(ctx)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "a@example.com", outputs[0].Email)
}

func TestAccountService_Update_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.UpdateAccountInput{
		FirstName: strPtr("Ezinne"),
	}
	updated := &entity.Account{
		ID:        "66e8a1f2b3c4d5e6f7a8b9c0",
		Email:     "zinny21@gmail.com",
		FirstName: "Ezinne",
	}

	fx.accountRepo.EXPECT().
		ApplyChanges(ctx, updated.ID, entity.ChangeSet{"first_name": "Ezinne"}).
		Return(updated, nil)

	output, err := fx.service.Update(ctx, updated.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "Ezinne", output.FirstName)
}

func TestAccountService_Update_PasswordIsHashed(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.UpdateAccountInput{
		Password: strPtr("new strong passphrase"),
	}

	fx.strength.EXPECT().
		Acceptable("new strong passphrase").
		Return(true)
	fx.hasher.EXPECT().
		Hash("new strong passphrase").
		Return("$2a$10$newhash", nil)
	fx.accountRepo.EXPECT().
		ApplyChanges(ctx, "66e8a1f2b3c4d5e6f7a8b9c0", entity.ChangeSet{"password": "$2a$10$newhash"}).
		Return(&entity.Account{ID: "66e8a1f2b3c4d5e6f7a8b9c0"}, nil)

	_, err := fx.service.Update(ctx, "66e8a1f2b3c4d5e6f7a8b9c0", input)

	require.NoError(t, err)
}

func TestAccountService_Update_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.UpdateAccountInput{
		Password: strPtr("qwerty123"),
	}

	fx.strength.EXPECT().
		Acceptable("qwerty123").
		Return(false)

	output, err := fx.service.Update(ctx, "66e8a1f2b3c4d5e6f7a8b9c0", input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	fx.accountRepo.AssertNotCalled(t, "ApplyChanges", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_Update_EmptyPayloadReturnsExisting(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	stored := &entity.Account{
		ID:    "66e8a1f2b3c4d5e6f7a8b9c0",
		Email: "zinny21@gmail.com",
	}

	fx.accountRepo.EXPECT().
		FindByID(ctx, stored.ID).
		Return(stored, nil)

	output, err := fx.service.Update(ctx, stored.ID, &usecase.UpdateAccountInput{})

	require.NoError(t, err)
	assert.Equal(t, "zinny21@gmail.com", output.Email)
	fx.accountRepo.AssertNotCalled(t, "ApplyChanges", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_Update_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.UpdateAccountInput{
		Title: strPtr("Chef"),
	}

	fx.accountRepo.EXPECT().
		ApplyChanges(ctx, "66e8a1f2b3c4d5e6f7a8b9c0", mock.AnythingOfType("entity.ChangeSet")).
		Return(nil, repository.ErrNotFound)

	output, err := fx.service.Update(ctx, "66e8a1f2b3c4d5e6f7a8b9c0", input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAccountService_Delete_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		Delete(ctx, "66e8a1f2b3c4d5e6f7a8b9c0").
		Return(nil)

	err := fx.service.Delete(ctx, "66e8a1f2b3c4d5e6f7a8b9c0")

	require.NoError(t, err)
}

func TestAccountService_Delete_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		Delete(ctx, "66e8a1f2b3c4d5e6f7a8b9c0").
		Return(repository.ErrNotFound)

	err := fx.service.Delete(ctx, "66e8a1f2b3c4d5e6f7a8b9c0")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAccountService_Output_OmitsPasswordHash(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	stored := &entity.Account{
		ID:           "66e8a1f2b3c4d5e6f7a8b9c0",
		Email:        "zinny21@gmail.com",
		PasswordHash: "$2a$10$hash",
	}

	fx.accountRepo.EXPECT().
		FindByID(ctx, stored.ID).
		Return(stored, nil)

	output, err := fx.service.Get(ctx, stored.ID)

	require.NoError(t, err)

	payload, err := json.Marshal(output)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "password")
	assert.NotContains(t, string(payload), "$2a$10$hash")
}
