package model

import (
	"time"

	"github.com/google/uuid"
)

// FoodModel mirrors the 'foods' table, the shared catalog of foods with
// calories per 100 units.
type FoodModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	BaseCalories float64   `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}
