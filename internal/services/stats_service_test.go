package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/hearingclinic/admin-api/internal/cache"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/services"
	"github.com/hearingclinic/admin-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsEmptyStores(t *testing.T) {
	contacts := testutil.NewFakeContactStore()
	appts := testutil.NewFakeAppointmentStore()
	mc := cache.NewMemoryCache()
	defer mc.Close()

	svc := services.NewStatsService(contacts, appts, mc, 30*time.Second)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{}, stats)
}

func TestStatsCounts(t *testing.T) {
	contacts := testutil.NewFakeContactStore()
	appts := testutil.NewFakeAppointmentStore()
	mc := cache.NewMemoryCache()
	defer mc.Close()

	ctx := context.Background()
	require.NoError(t, contacts.Create(ctx, &models.Contact{
		Name: "Jane", Email: "jane@example.com", Phone: "555-0100",
		Message: "hello", Status: models.ContactStatusNew,
	}))
	require.NoError(t, contacts.Create(ctx, &models.Contact{
		Name: "Joe", Email: "joe@example.com", Phone: "555-0101",
		Message: "hi", Status: models.ContactStatusResolved,
	}))
	require.NoError(t, appts.Create(ctx, &models.Appointment{
		PatientName:     "John",
		AppointmentDate: time.Now().Add(48 * time.Hour),
		AppointmentTime: "10:00",
		Status:          models.AppointmentStatusPending,
	}))
	require.NoError(t, appts.Create(ctx, &models.Appointment{
		PatientName:     "Mary",
		AppointmentDate: time.Now().Add(-48 * time.Hour),
		AppointmentTime: "11:00",
		Status:          models.AppointmentStatusCompleted,
	}))

	svc := services.NewStatsService(contacts, appts, mc, 30*time.Second)
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalContacts)
	assert.Equal(t, int64(1), stats.NewContacts)
	assert.Equal(t, int64(2), stats.TotalAppointments)
	assert.Equal(t, int64(1), stats.PendingAppointments)
	// only the future pending appointment counts as upcoming
	assert.Equal(t, int64(1), stats.UpcomingAppointments)
}

func TestStatsServedFromCache(t *testing.T) {
	contacts := testutil.NewFakeContactStore()
	appts := testutil.NewFakeAppointmentStore()
	mc := cache.NewMemoryCache()
	defer mc.Close()

	svc := services.NewStatsService(contacts, appts, mc, time.Minute)

	_, err := svc.Stats(context.Background())
	require.NoError(t, err)
	_, err = svc.Stats(context.Background())
	require.NoError(t, err)

	// second call hits the cache, not the stores
	assert.Equal(t, 1, contacts.CountCalls)
	assert.Equal(t, 1, appts.CountCalls)
}
