package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/repository"
)

// AppointmentService handles booking operations, including the
// surgery-slot conflict check.
type AppointmentService struct {
	appts repository.AppointmentStore
	slots repository.SlotStore
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(appts repository.AppointmentStore, slots repository.SlotStore) *AppointmentService {
	return &AppointmentService{appts: appts, slots: slots}
}

// List returns all appointments ordered by appointment date.
func (s *AppointmentService) List(ctx context.Context) ([]models.Appointment, error) {
	return s.appts.List(ctx)
}

// Create validates and persists a new booking. A booking whose start
// falls inside any surgery slot is rejected with ErrSchedulingConflict.
func (s *AppointmentService) Create(ctx context.Context, req *models.AppointmentCreateRequest) (*models.Appointment, error) {
	name := strings.TrimSpace(req.PatientName)
	email := strings.TrimSpace(req.PatientEmail)
	phone := strings.TrimSpace(req.PatientPhone)
	service := strings.TrimSpace(req.Service)
	if name == "" || email == "" || phone == "" || service == "" ||
		req.AppointmentDate == "" || req.AppointmentTime == "" {
		return nil, fmt.Errorf("%w: patientName, patientEmail, patientPhone, appointmentDate, appointmentTime, and service are required", ErrValidation)
	}

	date, err := parseDate(req.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: appointmentDate: %v", ErrValidation, err)
	}

	appt := &models.Appointment{
		PatientName:     name,
		PatientEmail:    email,
		PatientPhone:    phone,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Service:         service,
		Status:          models.AppointmentStatusPending,
		Notes:           req.Notes,
	}

	if err := s.checkSlotConflict(ctx, appt); err != nil {
		return nil, err
	}

	if err := s.appts.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Update applies a partial field set. Status changes must follow the
// lifecycle, and moving the booking re-runs the slot conflict check.
func (s *AppointmentService) Update(ctx context.Context, id uuid.UUID, req *models.AppointmentUpdateRequest) (*models.Appointment, error) {
	appt, err := s.appts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PatientName != nil {
		appt.PatientName = *req.PatientName
	}
	if req.PatientEmail != nil {
		appt.PatientEmail = *req.PatientEmail
	}
	if req.PatientPhone != nil {
		appt.PatientPhone = *req.PatientPhone
	}
	if req.Service != nil {
		appt.Service = *req.Service
	}
	if req.Notes != nil {
		appt.Notes = *req.Notes
	}

	moved := false
	if req.AppointmentDate != nil {
		date, err := parseDate(*req.AppointmentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: appointmentDate: %v", ErrValidation, err)
		}
		appt.AppointmentDate = date
		moved = true
	}
	if req.AppointmentTime != nil {
		appt.AppointmentTime = *req.AppointmentTime
		moved = true
	}

	if req.Status != nil {
		next := *req.Status
		if !next.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, next)
		}
		if !appt.Status.CanTransitionTo(next) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, next)
		}
		appt.Status = next
	}

	if moved {
		if err := s.checkSlotConflict(ctx, appt); err != nil {
			return nil, err
		}
	}

	if err := s.appts.Save(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Delete removes a booking. Deleting a missing ID returns
// repository.ErrNotFound.
func (s *AppointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.appts.Delete(ctx, id)
}

func (s *AppointmentService) checkSlotConflict(ctx context.Context, appt *models.Appointment) error {
	start, err := appt.StartsAt()
	if err != nil {
		return fmt.Errorf("%w: appointmentTime must be HH:MM", ErrValidation)
	}

	covering, err := s.slots.Covering(ctx, start)
	if err != nil {
		return err
	}
	if len(covering) > 0 {
		return fmt.Errorf("%w: %s falls inside %q", ErrSchedulingConflict,
			start.Format(time.RFC3339), covering[0].Title)
	}
	return nil
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
