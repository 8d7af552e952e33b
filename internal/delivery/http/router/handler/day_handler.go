package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/delivery/http/response"
	"petmanager/internal/usecase"
)

// DayHandler holds dependencies for diet day handlers.
type DayHandler struct {
	uc usecase.DayUsecase
}

// NewDayHandler is the constructor for DayHandler, injected by Fx.
func NewDayHandler(uc usecase.DayUsecase) *DayHandler {
	return &DayHandler{uc: uc}
}

// Create opens a tracked day for one of the user's pets.
func (h *DayHandler) Create(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c)

	var input usecase.CreateDayInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid day payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Day, "Day opened.")
}
