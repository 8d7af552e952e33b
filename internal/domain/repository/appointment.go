package repository

import (
	"context"

	"github.com/google/uuid"

	"petmanager/internal/domain/entity"
)

// AppointmentRepository persists appointments. ExistsOverlapping reports
// whether any of the user's appointments intersects the half-open window
// [start, end) in epoch milliseconds; excludeID skips one appointment so an
// update does not collide with itself (uuid.Nil excludes nothing).
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	ExistsOverlapping(ctx context.Context, userID uuid.UUID, start, end int64, excludeID uuid.UUID) (bool, error)
	DeleteByPetID(ctx context.Context, petID uuid.UUID) error
}
