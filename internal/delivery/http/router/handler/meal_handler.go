package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/delivery/http/response"
	"petmanager/internal/usecase"
)

// MealHandler holds dependencies for meal handlers.
type MealHandler struct {
	uc usecase.MealUsecase
}

// NewMealHandler is the constructor for MealHandler, injected by Fx.
func NewMealHandler(uc usecase.MealUsecase) *MealHandler {
	return &MealHandler{uc: uc}
}

// Create records a meal on one of the user's tracked days.
func (h *MealHandler) Create(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c)

	var input usecase.CreateMealInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid meal payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Meal, "Meal recorded.")
}

// Update modifies a meal.
func (h *MealHandler) Update(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c)

	mealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateMealInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid meal payload")
	}

	output, err := h.uc.Update(c.Request().Context(), user.ID, mealID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Meal, "Meal updated.")
}

// Delete removes a meal and reverses its diet progress contribution.
func (h *MealHandler) Delete(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c)

	mealID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), user.ID, mealID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Meal removed.")
}
