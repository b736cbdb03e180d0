// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"pantry/internal/delivery/http/response"
	"pantry/internal/usecase"
)

// FoodHandler holds dependencies for food-related handlers.
type FoodHandler struct {
	uc     usecase.FoodUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler, injected by Fx.
func NewFoodHandler(uc usecase.FoodUsecase, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the food creation request.
func (h *FoodHandler) Create(c echo.Context) error {
	var input *usecase.CreateFoodInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Food created successfully")
}

// List handles the food listing request. The page is bounded by
// configuration; there is no unbounded scan.
func (h *FoodHandler) List(c echo.Context) error {
	output, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Food listed successfully")
}

// Get handles the request for a single food record, looked up by id.
func (h *FoodHandler) Get(c echo.Context) error {
	output, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Food retrieved successfully")
}

// Update handles a partial update of an existing food record.
// Only the provided fields are written; absent or null fields are ignored.
func (h *FoodHandler) Update(c echo.Context) error {
	var input *usecase.UpdateFoodInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food payload")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Food updated successfully")
}

// Delete handles the removal of a single food record.
func (h *FoodHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
