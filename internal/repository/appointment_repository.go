package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/database"
	"github.com/hearingclinic/admin-api/internal/models"
	"gorm.io/gorm"
)

// AppointmentRepository handles appointment database operations
type AppointmentRepository struct{}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// List retrieves all appointments ordered by appointment date.
func (r *AppointmentRepository) List(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := database.DB.WithContext(ctx).
		Order("appointment_date ASC").
		Find(&appts).Error; err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// Create inserts a new appointment.
func (r *AppointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	if err := database.DB.WithContext(ctx).Create(appt).Error; err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by ID.
func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var appt models.Appointment
	if err := database.DB.WithContext(ctx).Where("id = ?", id).First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appt, nil
}

// Save persists all fields of an existing appointment.
func (r *AppointmentRepository) Save(ctx context.Context, appt *models.Appointment) error {
	if err := database.DB.WithContext(ctx).Save(appt).Error; err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return nil
}

// Delete removes an appointment. Returns ErrNotFound if nothing was deleted.
func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := database.DB.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of appointments.
func (r *AppointmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := database.DB.WithContext(ctx).Model(&models.Appointment{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return n, nil
}

// CountByStatus returns the number of appointments in the given status.
func (r *AppointmentRepository) CountByStatus(ctx context.Context, status models.AppointmentStatus) (int64, error) {
	var n int64
	if err := database.DB.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("status = ?", status).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count appointments by status: %w", err)
	}
	return n, nil
}

// CountUpcoming counts appointments dated at or after since that are
// still pending or confirmed.
func (r *AppointmentRepository) CountUpcoming(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	if err := database.DB.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date >= ? AND status IN ?", since,
			[]models.AppointmentStatus{models.AppointmentStatusPending, models.AppointmentStatusConfirmed}).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count upcoming appointments: %w", err)
	}
	return n, nil
}
