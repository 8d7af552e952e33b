package postgres

import (
	"context"

	"petmanager/internal/domain/entity"
	domainerrors "petmanager/internal/domain/errors"
	"petmanager/internal/domain/repository"
	"petmanager/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appointmentRepository implements the domain.AppointmentRepository interface using GORM.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create persists a new appointment.
func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	apptM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(apptM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPetNotFound
		}

		return errors.Wrap(err, "failed to create appointment")
	}

	appointment.ID = apptM.ID
	appointment.CreatedAt = apptM.CreatedAt
	appointment.UpdatedAt = apptM.UpdatedAt

	return nil
}

// Update saves all fields of an existing appointment.
func (repo *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	apptM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Save(apptM).Error; err != nil {
		return errors.Wrap(err, "failed to update appointment")
	}

	appointment.UpdatedAt = apptM.UpdatedAt

	return nil
}

// Delete removes an appointment row.
func (repo *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.AppointmentModel{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete appointment")
	}

	return nil
}

// FindByID retrieves a single appointment by its unique ID.
func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var apptM model.AppointmentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&apptM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrAppointmentMissing
		}
		return nil, errors.Wrap(err, "failed to find appointment")
	}

	return toAppointmentDomain(&apptM), nil
}

// ExistsOverlapping reports whether any of the user's appointments intersects
// the half-open window [start, end). Strict inequalities let back-to-back
// slots coexist. excludeID skips one appointment so an update does not
// collide with itself.
func (repo *appointmentRepository) ExistsOverlapping(ctx context.Context, userID uuid.UUID, start, end int64, excludeID uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).Model(&model.AppointmentModel{}).
		Where("user_id = ? AND start_time_stamp < ? AND end_time_stamp > ?", userID, end, start)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count overlapping appointments")
	}

	return count > 0, nil
}

// DeleteByPetID removes every appointment of a pet.
func (repo *appointmentRepository) DeleteByPetID(ctx context.Context, petID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.AppointmentModel{}, "pet_id = ?", petID).Error; err != nil {
		return errors.Wrap(err, "failed to delete appointments")
	}

	return nil
}

// --- Mapper Functions ---

// toAppointmentDomain converts a GORM AppointmentModel to a domain Appointment entity.
func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:             data.ID,
		UserID:         data.UserID,
		PetID:          data.PetID,
		Type:           entity.AppointmentType(data.Type),
		Description:    data.Description,
		Day:            data.Day,
		Month:          data.Month,
		Year:           data.Year,
		StartTimeStamp: data.StartTimeStamp,
		EndTimeStamp:   data.EndTimeStamp,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAppointmentDomain converts a domain Appointment entity to a GORM AppointmentModel.
func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:             data.ID,
		UserID:         data.UserID,
		PetID:          data.PetID,
		Type:           data.Type.String(),
		Description:    data.Description,
		Day:            data.Day,
		Month:          data.Month,
		Year:           data.Year,
		StartTimeStamp: data.StartTimeStamp,
		EndTimeStamp:   data.EndTimeStamp,
	}
}
