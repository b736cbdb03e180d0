package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpvalidator "pantry/internal/delivery/http/validator"
	domainerrors "pantry/internal/domain/errors"
	mockUsecase "pantry/internal/mocks/usecase"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// foodHandlerFixtures holds all test dependencies for food handler tests.
type foodHandlerFixtures struct {
	handler *FoodHandler
	uc      *mockUsecase.MockFoodUsecase
	echo    *echo.Echo
}

func createTestFoodHandler(t *testing.T) foodHandlerFixtures {
	uc := mockUsecase.NewMockFoodUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.Validator = httpvalidator.New()

	return foodHandlerFixtures{
		handler: NewFoodHandler(uc, logger),
		uc:      uc,
		echo:    e,
	}
}

func (f foodHandlerFixtures) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func TestFoodHandler_Create_Success(t *testing.T) {
	fx := createTestFoodHandler(t)

	body := `{"name":"Ultra Whey","description":"vanilla flavour","amount_per_scoop":1550.21}`
	c, rec := fx.newContext(http.MethodPost, "/foods/", body)

	fx.uc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreateFoodInput")).
		RunAndReturn(func(_ context.Context, input *usecase.CreateFoodInput) (*usecase.FoodOutput, error) {
			return &usecase.FoodOutput{
				ID:             "66e8a1f2b3c4d5e6f7a8b9c0",
				Name:           input.Name,
				Description:    input.Description,
				AmountPerScoop: input.AmountPerScoop,
			}, nil
		})

	err := fx.handler.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "66e8a1f2b3c4d5e6f7a8b9c0")
	assert.Contains(t, rec.Body.String(), "1550.21")
}

func TestFoodHandler_Create_ValidationFailure(t *testing.T) {
	fx := createTestFoodHandler(t)

	body := `{"description":"no name or amount"}`
	c, _ := fx.newContext(http.MethodPost, "/foods/", body)

	err := fx.handler.Create(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "name is required")
	assert.Contains(t, appErr.Details(), "amount_per_scoop is required")
	fx.uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFoodHandler_Create_MalformedJSON(t *testing.T) {
	fx := createTestFoodHandler(t)

	c, rec := fx.newContext(http.MethodPost, "/foods/", `{"name":`)

	err := fx.handler.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestFoodHandler_Get_Success(t *testing.T) {
	fx := createTestFoodHandler(t)

	c, rec := fx.newContext(http.MethodGet, "/foods/66e8a1f2b3c4d5e6f7a8b9c0", "")
	c.SetParamNames("id")
	c.SetParamValues("66e8a1f2b3c4d5e6f7a8b9c0")

	fx.uc.EXPECT().
		Get(mock.Anything, "66e8a1f2b3c4d5e6f7a8b9c0").
		Return(&usecase.FoodOutput{ID: "66e8a1f2b3c4d5e6f7a8b9c0", Name: "Oat Meal"}, nil)

	err := fx.handler.Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oat Meal")
}

func TestFoodHandler_Get_NotFound(t *testing.T) {
	fx := createTestFoodHandler(t)

	c, _ := fx.newContext(http.MethodGet, "/foods/66e8a1f2b3c4d5e6f7a8b9c0", "")
	c.SetParamNames("id")
	c.SetParamValues("66e8a1f2b3c4d5e6f7a8b9c0")

	fx.uc.EXPECT().
		Get(mock.Anything, "66e8a1f2b3c4d5e6f7a8b9c0").
		Return(nil, domainerrors.ErrNotFound.WrapMessage("food 66e8a1f2b3c4d5e6f7a8b9c0 not found"))

	err := fx.handler.Get(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestFoodHandler_List_Success(t *testing.T) {
	fx := createTestFoodHandler(t)

	c, rec := fx.newContext(http.MethodGet, "/foods/", "")

	fx.uc.EXPECT().
		List(mock.Anything).
		Return([]*usecase.FoodOutput{
			{ID: "66e8a1f2b3c4d5e6f7a8b9c0", Name: "Oat Meal"},
			{ID: "66e8a1f2b3c4d5e6f7a8b9c1", Name: "Ultra Whey"},
		}, nil)

	err := fx.handler.List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oat Meal")
	assert.Contains(t, rec.Body.String(), "Ultra Whey")
}

func TestFoodHandler_Update_Success(t *testing.T) {
	fx := createTestFoodHandler(t)

	c, rec := fx.newContext(http.MethodPut, "/foods/66e8a1f2b3c4d5e6f7a8b9c0", `{"name":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("66e8a1f2b3c4d5e6f7a8b9c0")

	fx.uc.EXPECT().
		Update(mock.Anything, "66e8a1f2b3c4d5e6f7a8b9c0", mock.AnythingOfType("*usecase.UpdateFoodInput")).
		Return(&usecase.FoodOutput{ID: "66e8a1f2b3c4d5e6f7a8b9c0", Name: "Renamed"}, nil)

	err := fx.handler.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Renamed")
}

func TestFoodHandler_Update_NonPositiveAmount(t *testing.T) {
	fx := createTestFoodHandler(t)

	c, _ := fx.newContext(http.MethodPut, "/foods/66e8a1f2b3c4d5e6f7a8b9c0", `{"amount_per_scoop":-5}`)
	c.SetParamNames("id")
	c.SetParamValues("66e8a1f2b3c4d5e6f7a8b9c0")

	err := fx.handler.Update(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	fx.uc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestFoodHandler_Delete_Success(t *testing.T) {
	fx := createTestFoodHandler(t)

	c, rec := fx.newContext(http.MethodDelete, "/foods/66e8a1f2b3c4d5e6f7a8b9c0", "")
	c.SetParamNames("id")
	c.SetParamValues("66e8a1f2b3c4d5e6f7a8b9c0")

	fx.uc.EXPECT().
		Delete(mock.Anything, "66e8a1f2b3c4d5e6f7a8b9c0").
		Return(nil)

	err := fx.handler.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	fx := createTestFoodHandler(t)

	c, rec := fx.newContext(http.MethodGet, "/health", "")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
