package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is a member of the closed enumeration.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// appointmentTransitions: pending -> confirmed -> completed, with
// cancellation reachable from any non-terminal state. completed and
// cancelled are terminal.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:   {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
	AppointmentStatusCompleted: {},
	AppointmentStatusCancelled: {},
}

// CanTransitionTo reports whether the lifecycle permits moving from s
// to next. Writing the current status back is always allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a patient booking.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientName     string            `gorm:"type:varchar(255);not null" json:"patientName"`
	PatientEmail    string            `gorm:"type:varchar(255);not null" json:"patientEmail"`
	PatientPhone    string            `gorm:"type:varchar(50);not null" json:"patientPhone"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointmentDate"`
	AppointmentTime string            `gorm:"type:varchar(10);not null" json:"appointmentTime"`
	Service         string            `gorm:"type:varchar(255);not null" json:"service"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Notes           string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// BeforeCreate hook
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = AppointmentStatusPending
	}
	return nil
}

// StartsAt combines the appointment date with its HH:MM time-of-day
// into a single instant, in the date's location.
func (a *Appointment) StartsAt() (time.Time, error) {
	tod, err := time.Parse("15:04", a.AppointmentTime)
	if err != nil {
		return time.Time{}, err
	}
	d := a.AppointmentDate
	return time.Date(d.Year(), d.Month(), d.Day(), tod.Hour(), tod.Minute(), 0, 0, d.Location()), nil
}

// AppointmentCreateRequest is the booking payload.
type AppointmentCreateRequest struct {
	PatientName     string `json:"patientName"`
	PatientEmail    string `json:"patientEmail"`
	PatientPhone    string `json:"patientPhone"`
	AppointmentDate string `json:"appointmentDate"` // RFC 3339 or YYYY-MM-DD
	AppointmentTime string `json:"appointmentTime"` // HH:MM
	Service         string `json:"service"`
	Notes           string `json:"notes"`
}

// AppointmentUpdateRequest is a partial update; nil fields are left
// untouched. The identifier is immutable and not part of the payload.
type AppointmentUpdateRequest struct {
	PatientName     *string            `json:"patientName"`
	PatientEmail    *string            `json:"patientEmail"`
	PatientPhone    *string            `json:"patientPhone"`
	AppointmentDate *string            `json:"appointmentDate"`
	AppointmentTime *string            `json:"appointmentTime"`
	Service         *string            `json:"service"`
	Status          *AppointmentStatus `json:"status"`
	Notes           *string            `json:"notes"`
}
