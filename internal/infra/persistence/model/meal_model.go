package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel mirrors the 'meals' table. Foods lines live in the meal_foods
// table and are replaced wholesale on update.
type MealModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PetID         uuid.UUID `gorm:"type:uuid;not null;index"`
	DayID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Description   string    `gorm:"type:text"`
	CaloriesTotal float64   `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Foods []MealFoodModel `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// MealFoodModel mirrors the 'meal_foods' table, one row per food line of a
// calorie-tracked meal. BaseCalories is copied from the catalog at write
// time so later catalog edits cannot rewrite history.
type MealFoodModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MealID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodID       uuid.UUID `gorm:"type:uuid;not null"`
	Quantity     float64   `gorm:"not null"`
	BaseCalories float64   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MealFoodModel) TableName() string {
	return "meal_foods"
}
