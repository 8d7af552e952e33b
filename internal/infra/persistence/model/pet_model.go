package model

import (
	"time"

	"github.com/google/uuid"
)

// PetModel mirrors the 'pets' table.
type PetModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Age              int       `gorm:"not null"`
	AgeIn            string    `gorm:"type:varchar(10);not null"`
	Species          string    `gorm:"type:varchar(10);not null"`
	Breed            string    `gorm:"type:varchar(100)"`
	Gender           string    `gorm:"type:varchar(20)"`
	MonitoringDietBy string    `gorm:"type:varchar(10);not null"`
	DietGoal         float64   `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}
