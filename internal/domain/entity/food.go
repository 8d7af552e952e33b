package entity

import (
	"time"

	"github.com/google/uuid"
)

// Food is a catalog entry. BaseCalories is calories per 100 units.
type Food struct {
	ID           uuid.UUID
	Name         string
	BaseCalories float64
	CreatedAt    time.Time
}
