package impl

import (
	"context"
	"log/slog"

	deliverycontext "petmanager/internal/delivery/context"
	"petmanager/internal/domain/entity"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/domain/repository"
	"petmanager/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	txManager repository.TransactionManager
	petRepo   repository.PetRepository
	apptRepo  repository.AppointmentRepository
	logger    *slog.Logger
}

// AppointmentServiceParams holds dependencies for appointmentService, injected by Fx.
type AppointmentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PetRepo   repository.PetRepository
	ApptRepo  repository.AppointmentRepository
	Logger    *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(params AppointmentServiceParams) usecase.AppointmentUsecase {
	return &appointmentService{
		txManager: params.TxManager,
		petRepo:   params.PetRepo,
		apptRepo:  params.ApptRepo,
		logger:    params.Logger,
	}
}

func (srv *appointmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create books a time window for a pet the user owns. The overlap check and
// the insert run in one transaction, serialized on the user's row, so two
// concurrent bookings cannot both claim intersecting windows. Back-to-back
// windows are allowed.
func (srv *appointmentService) Create(ctx context.Context, userID uuid.UUID, input usecase.CreateAppointmentInput) (*usecase.AppointmentOutput, error) {
	if !entity.AppointmentType(input.Type).IsValid() {
		return nil, domainerrors.NewValidation(map[string]string{
			"type": "Type must be one of 'vet', 'groom' or 'other'.",
		})
	}

	pet, err := srv.petRepo.FindByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}
	if pet.UserID != userID {
		return nil, domainerrors.ErrPetNotFound
	}

	start, end := entity.AppointmentWindow(input.Year, input.Month, input.Day,
		*input.StartHour, *input.StartMinute, *input.EndHour, *input.EndMinute)
	if start >= end {
		return nil, domainerrors.NewValidation(map[string]string{
			"endHour": "The appointment must end after it starts.",
		})
	}

	appointment := &entity.Appointment{
		UserID:         userID,
		PetID:          pet.ID,
		Type:           entity.AppointmentType(input.Type),
		Description:    input.Description,
		Day:            input.Day,
		Month:          input.Month,
		Year:           input.Year,
		StartTimeStamp: start,
		EndTimeStamp:   end,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.Users().LockByID(ctx, userID); err != nil {
			return err
		}

		appts := repoFactory.Appointments()

		taken, err := appts.ExistsOverlapping(ctx, userID, start, end, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return domainerrors.ErrAppointmentTaken
		}

		return appts.Create(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Appointment booked", slog.Any("appointmentID", appointment.ID), slog.Any("petID", pet.ID))

	return &usecase.AppointmentOutput{Appointment: appointment}, nil
}

// Update applies a partial update. A change to any date or time field
// recomputes the slot and re-runs the overlap check, excluding the
// appointment itself.
func (srv *appointmentService) Update(ctx context.Context, userID, appointmentID uuid.UUID, input usecase.UpdateAppointmentInput) (*usecase.AppointmentOutput, error) {
	appointment, err := srv.ownedAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		if !entity.AppointmentType(*input.Type).IsValid() {
			return nil, domainerrors.NewValidation(map[string]string{
				"type": "Type must be one of 'vet', 'groom' or 'other'.",
			})
		}
		appointment.Type = entity.AppointmentType(*input.Type)
	}
	if input.Description != nil {
		appointment.Description = *input.Description
	}

	// The stored window only encodes the wall-clock times through the
	// timestamps, so derive the current clocks before merging changes.
	rescheduled := input.Day != nil || input.Month != nil || input.Year != nil ||
		input.StartHour != nil || input.StartMinute != nil ||
		input.EndHour != nil || input.EndMinute != nil
	if rescheduled {
		startHour, startMinute := windowClock(appointment.StartTimeStamp)
		endHour, endMinute := windowClock(appointment.EndTimeStamp)
		if input.Day != nil {
			appointment.Day = *input.Day
		}
		if input.Month != nil {
			appointment.Month = *input.Month
		}
		if input.Year != nil {
			appointment.Year = *input.Year
		}
		if input.StartHour != nil {
			startHour = *input.StartHour
		}
		if input.StartMinute != nil {
			startMinute = *input.StartMinute
		}
		if input.EndHour != nil {
			endHour = *input.EndHour
		}
		if input.EndMinute != nil {
			endMinute = *input.EndMinute
		}

		appointment.StartTimeStamp, appointment.EndTimeStamp = entity.AppointmentWindow(
			appointment.Year, appointment.Month, appointment.Day,
			startHour, startMinute, endHour, endMinute)
		if appointment.StartTimeStamp >= appointment.EndTimeStamp {
			return nil, domainerrors.NewValidation(map[string]string{
				"endHour": "The appointment must end after it starts.",
			})
		}
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appts := repoFactory.Appointments()

		if rescheduled {
			if err := repoFactory.Users().LockByID(ctx, userID); err != nil {
				return err
			}
			taken, err := appts.ExistsOverlapping(ctx, userID,
				appointment.StartTimeStamp, appointment.EndTimeStamp, appointment.ID)
			if err != nil {
				return err
			}
			if taken {
				return domainerrors.ErrAppointmentTaken
			}
		}

		return appts.Update(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}

	return &usecase.AppointmentOutput{Appointment: appointment}, nil
}

// Delete cancels an appointment the user owns.
func (srv *appointmentService) Delete(ctx context.Context, userID, appointmentID uuid.UUID) error {
	appointment, err := srv.ownedAppointment(ctx, userID, appointmentID)
	if err != nil {
		return err
	}

	if err := srv.apptRepo.Delete(ctx, appointment.ID); err != nil {
		return err
	}

	srv.log(ctx).Info("Appointment cancelled", slog.Any("appointmentID", appointmentID))

	return nil
}

func (srv *appointmentService) ownedAppointment(ctx context.Context, userID, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := srv.apptRepo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.UserID != userID {
		return nil, domainerrors.ErrAppointmentMissing
	}

	return appointment, nil
}
