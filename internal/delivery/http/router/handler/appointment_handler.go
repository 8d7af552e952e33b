package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/delivery/http/response"
	"petmanager/internal/usecase"
)

// AppointmentHandler holds dependencies for appointment handlers.
type AppointmentHandler struct {
	uc usecase.AppointmentUsecase
}

// NewAppointmentHandler is the constructor for AppointmentHandler, injected by Fx.
func NewAppointmentHandler(uc usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Create books a time window for one of the user's pets.
func (h *AppointmentHandler) Create(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c)

	var input usecase.CreateAppointmentInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid appointment payload")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Appointment, "Appointment booked.")
}

// Update modifies an appointment, rechecking overlaps when rescheduled.
func (h *AppointmentHandler) Update(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c)

	appointmentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateAppointmentInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid appointment payload")
	}

	output, err := h.uc.Update(c.Request().Context(), user.ID, appointmentID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output.Appointment, "Appointment updated.")
}

// Delete cancels an appointment.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	user := deliverycontext.GetAuthUser(c)

	appointmentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), user.ID, appointmentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Appointment cancelled.")
}
