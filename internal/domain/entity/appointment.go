package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentType enumerates the kinds of appointment a pet can have.
type AppointmentType string

const (
	AppointmentVet   AppointmentType = "vet"
	AppointmentGroom AppointmentType = "groom"
	AppointmentOther AppointmentType = "other"
)

func (t AppointmentType) String() string { return string(t) }

// IsValid reports whether t is one of the known appointment types.
func (t AppointmentType) IsValid() bool {
	switch t {
	case AppointmentVet, AppointmentGroom, AppointmentOther:
		return true
	}
	return false
}

// Appointment is a scheduled time window for a pet. StartTimeStamp and
// EndTimeStamp are Unix epoch milliseconds derived from the calendar fields
// plus the requested start and end wall-clock times.
type Appointment struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	PetID          uuid.UUID
	Type           AppointmentType
	Description    string
	Day            int
	Month          int
	Year           int
	StartTimeStamp int64
	EndTimeStamp   int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AppointmentWindow converts a calendar date plus wall-clock start and end
// times into the pair of epoch-millisecond bounds of the window. Both bounds
// fall on the same calendar day.
func AppointmentWindow(year, month, day, startHour, startMinute, endHour, endMinute int) (start, end int64) {
	s := time.Date(year, time.Month(month), day, startHour, startMinute, 0, 0, time.UTC)
	e := time.Date(year, time.Month(month), day, endHour, endMinute, 0, 0, time.UTC)
	return s.UnixMilli(), e.UnixMilli()
}
