package usecase

import (
	"context"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
)

// CreateAppointmentInput defines the data required to book a time window.
// The clock fields are pointers so a zero value (midnight, minute zero)
// still counts as present.
type CreateAppointmentInput struct {
	PetID       uuid.UUID `json:"petId" validate:"required"`
	Type        string    `json:"type" validate:"required"`
	Description string    `json:"description"`
	Day         int       `json:"day" validate:"required,gt=0"`
	Month       int       `json:"month" validate:"required,gt=0"`
	Year        int       `json:"year" validate:"required,gt=0"`
	StartHour   *int      `json:"startHour" validate:"required,min=0,max=23"`
	StartMinute *int      `json:"startMinute" validate:"required,min=0,max=59"`
	EndHour     *int      `json:"endHour" validate:"required,min=0,max=23"`
	EndMinute   *int      `json:"endMinute" validate:"required,min=0,max=59"`
}

// UpdateAppointmentInput carries a partial appointment update. When any of
// the date or time fields is present the window is recomputed and re-checked
// for overlaps.
type UpdateAppointmentInput struct {
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Day         *int    `json:"day"`
	Month       *int    `json:"month"`
	Year        *int    `json:"year"`
	StartHour   *int    `json:"startHour" validate:"omitempty,min=0,max=23"`
	StartMinute *int    `json:"startMinute" validate:"omitempty,min=0,max=59"`
	EndHour     *int    `json:"endHour" validate:"omitempty,min=0,max=23"`
	EndMinute   *int    `json:"endMinute" validate:"omitempty,min=0,max=59"`
}

// AppointmentOutput returns an appointment after a write operation.
type AppointmentOutput struct {
	Appointment *entity.Appointment
}

// AppointmentUsecase defines the interface for appointment scheduling.
type AppointmentUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateAppointmentInput) (*AppointmentOutput, error)
	Update(ctx context.Context, userID, appointmentID uuid.UUID, input UpdateAppointmentInput) (*AppointmentOutput, error)
	Delete(ctx context.Context, userID, appointmentID uuid.UUID) error
}
