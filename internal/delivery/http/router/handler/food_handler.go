package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"petmanager/internal/delivery/http/response"
	"petmanager/internal/usecase"
)

// FoodHandler holds dependencies for the food catalog handlers.
type FoodHandler struct {
	uc usecase.FoodUsecase
}

// NewFoodHandler is the constructor for FoodHandler, injected by Fx.
func NewFoodHandler(uc usecase.FoodUsecase) *FoodHandler {
	return &FoodHandler{uc: uc}
}

// Create adds a food to the shared catalog.
func (h *FoodHandler) Create(c echo.Context) error {
	var input usecase.CreateFoodInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid food payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Food, "Food added.")
}
