package model

import (
	"time"

	"github.com/google/uuid"
)

// DayModel mirrors the 'days' table. The composite unique index enforces at
// most one tracked day per pet per calendar date.
type DayModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	PetID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_days_pet_date"`
	Day              int       `gorm:"not null;uniqueIndex:idx_days_pet_date"`
	Month            int       `gorm:"not null;uniqueIndex:idx_days_pet_date"`
	Year             int       `gorm:"not null;uniqueIndex:idx_days_pet_date"`
	MonitoringDietBy string    `gorm:"type:varchar(10);not null"`
	DietGoal         float64   `gorm:"not null"`
	DietGoalProgress float64   `gorm:"not null;default:0"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DayModel) TableName() string {
	return "days"
}

// MonthModel mirrors the 'months' table, a write-once existence marker.
type MonthModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PetID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_months_pet_period"`
	Month     int       `gorm:"not null;uniqueIndex:idx_months_pet_period"`
	Year      int       `gorm:"not null;uniqueIndex:idx_months_pet_period"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MonthModel) TableName() string {
	return "months"
}

// YearModel mirrors the 'years' table, a write-once existence marker.
type YearModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PetID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_years_pet_period"`
	Year      int       `gorm:"not null;uniqueIndex:idx_years_pet_period"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (YearModel) TableName() string {
	return "years"
}
