package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table. Start and end are epoch
// milliseconds; the composite index backs the overlap query.
type AppointmentModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:idx_appointments_user_window"`
	PetID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Type           string    `gorm:"type:varchar(10);not null"`
	Description    string    `gorm:"type:text"`
	Day            int       `gorm:"not null"`
	Month          int       `gorm:"not null"`
	Year           int       `gorm:"not null"`
	StartTimeStamp int64     `gorm:"not null;index:idx_appointments_user_window"`
	EndTimeStamp   int64     `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
