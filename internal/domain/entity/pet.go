// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Species represents the kind of animal a pet is.
type Species string

const (
	// SpeciesDog indicates a dog.
	SpeciesDog Species = "dog"
	// SpeciesCat indicates a cat.
	SpeciesCat Species = "cat"
)

// String returns the string representation of the Species.
func (s Species) String() string {
	return string(s)
}

// IsValid checks if the Species is a valid value.
func (s Species) IsValid() bool {
	switch s {
	case SpeciesDog, SpeciesCat:
		return true
	default:
		return false
	}
}

// AgeUnit represents the unit a pet's age is expressed in.
type AgeUnit string

const (
	// AgeInMonths expresses the age in months.
	AgeInMonths AgeUnit = "months"
	// AgeInYears expresses the age in years.
	AgeInYears AgeUnit = "years"
)

// String returns the string representation of the AgeUnit.
func (a AgeUnit) String() string {
	return string(a)
}

// IsValid checks if the AgeUnit is a valid value.
func (a AgeUnit) IsValid() bool {
	switch a {
	case AgeInMonths, AgeInYears:
		return true
	default:
		return false
	}
}

// Pet is owned by exactly one user. Its monitoring mode and diet goal are
// copied onto every Day created for it; changing them later never touches
// Days that already exist.
type Pet struct {
	ID               uuid.UUID // The unique identifier for the pet.
	UserID           uuid.UUID // The owning user.
	Name             string
	Age              int
	AgeIn            AgeUnit
	Species          Species
	Breed            string
	Gender           string
	MonitoringDietBy MonitoringMode // How diet progress is tracked for new Days.
	DietGoal         float64        // Daily goal: meal count or calories, per the mode.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
