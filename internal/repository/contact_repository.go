package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/database"
	"github.com/hearingclinic/admin-api/internal/models"
	"gorm.io/gorm"
)

// ContactRepository handles contact database operations
type ContactRepository struct{}

// NewContactRepository creates a new contact repository
func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

// List retrieves all contacts, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := database.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Create inserts a new contact.
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if err := database.DB.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// GetByID retrieves a contact by ID.
func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	if err := database.DB.WithContext(ctx).Where("id = ?", id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return &contact, nil
}

// Save persists all fields of an existing contact.
func (r *ContactRepository) Save(ctx context.Context, contact *models.Contact) error {
	if err := database.DB.WithContext(ctx).Save(contact).Error; err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}

// Delete removes a contact. Returns ErrNotFound if nothing was deleted.
func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := database.DB.WithContext(ctx).Delete(&models.Contact{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of contacts.
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := database.DB.WithContext(ctx).Model(&models.Contact{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return n, nil
}

// CountByStatus returns the number of contacts in the given status.
func (r *ContactRepository) CountByStatus(ctx context.Context, status models.ContactStatus) (int64, error) {
	var n int64
	if err := database.DB.WithContext(ctx).
		Model(&models.Contact{}).
		Where("status = ?", status).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count contacts by status: %w", err)
	}
	return n, nil
}
