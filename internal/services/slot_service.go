package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/repository"
)

// SlotService handles surgery-slot operations.
type SlotService struct {
	slots repository.SlotStore
}

// NewSlotService creates a new slot service
func NewSlotService(slots repository.SlotStore) *SlotService {
	return &SlotService{slots: slots}
}

// List returns all slots ordered by start time.
func (s *SlotService) List(ctx context.Context) ([]models.SurgerySlot, error) {
	return s.slots.List(ctx)
}

// Create validates and persists a new slot. The start must be
// strictly before the end.
func (s *SlotService) Create(ctx context.Context, req *models.SurgerySlotCreateRequest, createdBy string) (*models.SurgerySlot, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if createdBy == "" {
		return nil, fmt.Errorf("%w: createdBy is required", ErrValidation)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime and endTime are required", ErrValidation)
	}
	if !req.StartTime.Before(req.EndTime) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrValidation)
	}

	slot := &models.SurgerySlot{
		Title:       title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
		CreatedBy:   createdBy,
	}
	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// Delete removes a slot. Deleting a missing ID returns
// repository.ErrNotFound.
func (s *SlotService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.slots.Delete(ctx, id)
}
