package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hearingclinic/admin-api/internal/cache"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// StatsService aggregates dashboard counts across the stores. Results
// are cached briefly since the dashboard polls.
type StatsService struct {
	contacts repository.ContactStore
	appts    repository.AppointmentStore
	cache    cache.Cache
	ttl      time.Duration
	now      func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(contacts repository.ContactStore, appts repository.AppointmentStore, c cache.Cache, ttl time.Duration) *StatsService {
	return &StatsService{
		contacts: contacts,
		appts:    appts,
		cache:    c,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Stats returns the aggregate counts, serving from cache when fresh.
// Empty collections yield all-zero counts, never an error.
func (s *StatsService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	if cached, err := s.cache.Get(ctx, cache.StatsKey); err == nil {
		var stats models.DashboardStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	stats := &models.DashboardStats{}
	var err error

	if stats.TotalContacts, err = s.contacts.Count(ctx); err != nil {
		return nil, err
	}
	if stats.NewContacts, err = s.contacts.CountByStatus(ctx, models.ContactStatusNew); err != nil {
		return nil, err
	}
	if stats.TotalAppointments, err = s.appts.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingAppointments, err = s.appts.CountByStatus(ctx, models.AppointmentStatusPending); err != nil {
		return nil, err
	}
	if stats.UpcomingAppointments, err = s.appts.CountUpcoming(ctx, s.now()); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, cache.StatsKey, payload, s.ttl); err != nil {
			log.Warn().Err(err).Msg("Failed to cache dashboard stats")
		}
	}

	return stats, nil
}
