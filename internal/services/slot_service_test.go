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

func TestSlotCreate(t *testing.T) {
	svc := services.NewSlotService(testutil.NewFakeSlotStore())

	start := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
	slot, err := svc.Create(context.Background(), &models.SurgerySlotCreateRequest{
		Title:     "Cochlear implant surgery",
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
	}, "admin")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, slot.ID)
	assert.Equal(t, "admin", slot.CreatedBy)
}

func TestSlotCreateValidation(t *testing.T) {
	svc := services.NewSlotService(testutil.NewFakeSlotStore())
	start := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)

	// missing title
	_, err := svc.Create(context.Background(), &models.SurgerySlotCreateRequest{
		StartTime: start, EndTime: start.Add(time.Hour),
	}, "admin")
	assert.ErrorIs(t, err, services.ErrValidation)

	// missing creator
	_, err = svc.Create(context.Background(), &models.SurgerySlotCreateRequest{
		Title: "Surgery", StartTime: start, EndTime: start.Add(time.Hour),
	}, "")
	assert.ErrorIs(t, err, services.ErrValidation)

	// start must be strictly before end
	_, err = svc.Create(context.Background(), &models.SurgerySlotCreateRequest{
		Title: "Surgery", StartTime: start, EndTime: start,
	}, "admin")
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Create(context.Background(), &models.SurgerySlotCreateRequest{
		Title: "Surgery", StartTime: start.Add(time.Hour), EndTime: start,
	}, "admin")
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestSlotListOrdering(t *testing.T) {
	store := testutil.NewFakeSlotStore()
	svc := services.NewSlotService(store)
	base := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)

	for _, offset := range []time.Duration{48 * time.Hour, 0, 24 * time.Hour} {
		_, err := svc.Create(context.Background(), &models.SurgerySlotCreateRequest{
			Title:     "Surgery",
			StartTime: base.Add(offset),
			EndTime:   base.Add(offset + time.Hour),
		}, "admin")
		require.NoError(t, err)
	}

	slots, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.True(t, slots[0].StartTime.Before(slots[1].StartTime))
	assert.True(t, slots[1].StartTime.Before(slots[2].StartTime))
}

func TestSlotDeleteStrict(t *testing.T) {
	svc := services.NewSlotService(testutil.NewFakeSlotStore())
	start := time.Date(2026, 10, 5, 9, 0, 0, 0, time.UTC)
	slot, err := svc.Create(context.Background(), &models.SurgerySlotCreateRequest{
		Title: "Surgery", StartTime: start, EndTime: start.Add(time.Hour),
	}, "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), slot.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), slot.ID), repository.ErrNotFound)
}
