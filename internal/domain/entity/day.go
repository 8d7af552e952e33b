// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Day is one calendar day of diet tracking for one pet. The monitoring mode
// and goal are snapshots of the pet's settings at creation time;
// DietGoalProgress is the running counter maintained by meal
// create/update/delete.
type Day struct {
	ID               uuid.UUID
	UserID           uuid.UUID // Denormalized owner reference for querying and cascades.
	PetID            uuid.UUID
	Day              int
	Month            int
	Year             int
	MonitoringDietBy MonitoringMode
	DietGoal         float64
	DietGoalProgress float64
	CreatedAt        time.Time
}

// Month is a lazily created existence marker for a (pet, month, year) pair.
// It is written at most once, alongside the first Day of that period, and
// never updated. Used only for historical querying.
type Month struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PetID     uuid.UUID
	Month     int
	Year      int
	CreatedAt time.Time
}

// Year is a lazily created existence marker for a (pet, year) pair, with the
// same write-once semantics as Month.
type Year struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PetID     uuid.UUID
	Year      int
	CreatedAt time.Time
}
