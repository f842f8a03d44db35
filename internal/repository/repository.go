package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/models"
)

// ErrNotFound indicates the addressed record does not exist.
var ErrNotFound = errors.New("record not found")

// UserStore is the persistence surface needed by the authenticator.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// ContactStore persists patient inquiries.
type ContactStore interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	Save(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.ContactStatus) (int64, error)
}

// AppointmentStore persists bookings.
type AppointmentStore interface {
	List(ctx context.Context) ([]models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	Save(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error)
	CountUpcoming(ctx context.Context, since time.Time) (int64, error)
}

// SlotStore persists surgery slots.
type SlotStore interface {
	List(ctx context.Context) ([]models.SurgerySlot, error)
	Create(ctx context.Context, slot *models.SurgerySlot) error
	Delete(ctx context.Context, id uuid.UUID) error
	Covering(ctx context.Context, at time.Time) ([]models.SurgerySlot, error)
}
