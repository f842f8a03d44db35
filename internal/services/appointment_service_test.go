package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/repository"
	"github.com/hearingclinic/admin-api/internal/services"
	"github.com/hearingclinic/admin-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAppointmentRequest() *models.AppointmentCreateRequest {
	return &models.AppointmentCreateRequest{
		PatientName:     "John Smith",
		PatientEmail:    "john@example.com",
		PatientPhone:    "555-0101",
		AppointmentDate: "2026-10-05",
		AppointmentTime: "10:30",
		Service:         "hearing-test",
	}
}

func newAppointmentService() (*services.AppointmentService, *testutil.FakeAppointmentStore, *testutil.FakeSlotStore) {
	appts := testutil.NewFakeAppointmentStore()
	slots := testutil.NewFakeSlotStore()
	return services.NewAppointmentService(appts, slots), appts, slots
}

func TestAppointmentCreate(t *testing.T) {
	svc, _, _ := newAppointmentService()

	created, err := svc.Create(context.Background(), validAppointmentRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.AppointmentStatusPending, created.Status)
	assert.Equal(t, "10:30", created.AppointmentTime)
}

func TestAppointmentCreateValidation(t *testing.T) {
	svc, _, _ := newAppointmentService()

	tests := []struct {
		name   string
		mutate func(*models.AppointmentCreateRequest)
	}{
		{"missing patient name", func(r *models.AppointmentCreateRequest) { r.PatientName = "" }},
		{"missing email", func(r *models.AppointmentCreateRequest) { r.PatientEmail = "" }},
		{"missing phone", func(r *models.AppointmentCreateRequest) { r.PatientPhone = "" }},
		{"missing date", func(r *models.AppointmentCreateRequest) { r.AppointmentDate = "" }},
		{"missing time", func(r *models.AppointmentCreateRequest) { r.AppointmentTime = "" }},
		{"missing service", func(r *models.AppointmentCreateRequest) { r.Service = "" }},
		{"bad date", func(r *models.AppointmentCreateRequest) { r.AppointmentDate = "05/10/2026" }},
		{"bad time", func(r *models.AppointmentCreateRequest) { r.AppointmentTime = "10.30am" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validAppointmentRequest()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestAppointmentCreateInsideSlotRejected(t *testing.T) {
	svc, _, slots := newAppointmentService()

	start := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, slots.Create(context.Background(), &models.SurgerySlot{
		Title:     "Cochlear implant surgery",
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
		CreatedBy: "admin",
	}))

	_, err := svc.Create(context.Background(), validAppointmentRequest())
	assert.ErrorIs(t, err, services.ErrSchedulingConflict)
}

func TestAppointmentCreateAtSlotEndAllowed(t *testing.T) {
	svc, _, slots := newAppointmentService()

	// slot ends exactly when the appointment starts
	start := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
	require.NoError(t, slots.Create(context.Background(), &models.SurgerySlot{
		Title:     "Morning surgery",
		StartTime: start,
		EndTime:   start.Add(90 * time.Minute), // 10:30
		CreatedBy: "admin",
	}))

	_, err := svc.Create(context.Background(), validAppointmentRequest())
	assert.NoError(t, err)
}

func TestAppointmentPartialUpdate(t *testing.T) {
	svc, _, _ := newAppointmentService()
	created, err := svc.Create(context.Background(), validAppointmentRequest())
	require.NoError(t, err)

	notes := "patient requested morning visit"
	updated, err := svc.Update(context.Background(), created.ID, &models.AppointmentUpdateRequest{
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	// untouched fields survive
	assert.Equal(t, created.PatientName, updated.PatientName)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.ID, updated.ID)
}

func TestAppointmentStatusLifecycle(t *testing.T) {
	svc, _, _ := newAppointmentService()
	created, err := svc.Create(context.Background(), validAppointmentRequest())
	require.NoError(t, err)

	confirmed := models.AppointmentStatusConfirmed
	updated, err := svc.Update(context.Background(), created.ID, &models.AppointmentUpdateRequest{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, confirmed, updated.Status)

	completed := models.AppointmentStatusCompleted
	updated, err = svc.Update(context.Background(), created.ID, &models.AppointmentUpdateRequest{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, completed, updated.Status)

	// completed is terminal
	cancelled := models.AppointmentStatusCancelled
	_, err = svc.Update(context.Background(), created.ID, &models.AppointmentUpdateRequest{Status: &cancelled})
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestAppointmentUpdateBadStatus(t *testing.T) {
	svc, _, _ := newAppointmentService()
	created, err := svc.Create(context.Background(), validAppointmentRequest())
	require.NoError(t, err)

	bogus := models.AppointmentStatus("rescheduled")
	_, err = svc.Update(context.Background(), created.ID, &models.AppointmentUpdateRequest{Status: &bogus})
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}

func TestAppointmentMoveIntoSlotRejected(t *testing.T) {
	svc, _, slots := newAppointmentService()
	created, err := svc.Create(context.Background(), validAppointmentRequest())
	require.NoError(t, err)

	start := time.Date(2026, 10, 6, 8, 0, 0, 0, time.UTC)
	require.NoError(t, slots.Create(context.Background(), &models.SurgerySlot{
		Title:     "All-day surgery",
		StartTime: start,
		EndTime:   start.Add(10 * time.Hour),
		CreatedBy: "admin",
	}))

	newDate := "2026-10-06"
	_, err = svc.Update(context.Background(), created.ID, &models.AppointmentUpdateRequest{
		AppointmentDate: &newDate,
	})
	assert.ErrorIs(t, err, services.ErrSchedulingConflict)
}

func TestAppointmentDeleteStrict(t *testing.T) {
	svc, _, _ := newAppointmentService()
	created, err := svc.Create(context.Background(), validAppointmentRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	appts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, appts)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), repository.ErrNotFound)
}

func TestAppointmentUpdateMissing(t *testing.T) {
	svc, _, _ := newAppointmentService()
	notes := "x"
	_, err := svc.Update(context.Background(), uuid.New(), &models.AppointmentUpdateRequest{Notes: &notes})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
