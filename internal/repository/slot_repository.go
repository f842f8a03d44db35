package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/database"
	"github.com/hearingclinic/admin-api/internal/models"
)

// SlotRepository handles surgery slot database operations
type SlotRepository struct{}

// NewSlotRepository creates a new slot repository
func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

// List retrieves all slots ordered by start time.
func (r *SlotRepository) List(ctx context.Context) ([]models.SurgerySlot, error) {
	var slots []models.SurgerySlot
	if err := database.DB.WithContext(ctx).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("failed to list surgery slots: %w", err)
	}
	return slots, nil
}

// Create inserts a new slot.
func (r *SlotRepository) Create(ctx context.Context, slot *models.SurgerySlot) error {
	if err := database.DB.WithContext(ctx).Create(slot).Error; err != nil {
		return fmt.Errorf("failed to create surgery slot: %w", err)
	}
	return nil
}

// Delete removes a slot. Returns ErrNotFound if nothing was deleted.
func (r *SlotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := database.DB.WithContext(ctx).Delete(&models.SurgerySlot{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete surgery slot: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Covering retrieves slots whose range contains the given instant.
// The end bound is exclusive.
func (r *SlotRepository) Covering(ctx context.Context, at time.Time) ([]models.SurgerySlot, error) {
	var slots []models.SurgerySlot
	if err := database.DB.WithContext(ctx).
		Where("start_time <= ? AND end_time > ?", at, at).
		Find(&slots).Error; err != nil {
		return nil, fmt.Errorf("failed to query covering slots: %w", err)
	}
	return slots, nil
}
