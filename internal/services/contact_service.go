package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hearingclinic/admin-api/internal/models"
	"github.com/hearingclinic/admin-api/internal/repository"
)

// ContactService handles patient inquiry operations.
type ContactService struct {
	contacts repository.ContactStore
}

// NewContactService creates a new contact service
func NewContactService(contacts repository.ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

// List returns all contacts, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.contacts.List(ctx)
}

// Create persists a new inquiry from the public form. Status always
// starts at "new".
func (s *ContactService) Create(ctx context.Context, req *models.ContactCreateRequest) (*models.Contact, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || phone == "" || message == "" {
		return nil, fmt.Errorf("%w: name, email, phone, and message are required", ErrValidation)
	}

	contact := &models.Contact{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Message: message,
		Status:  models.ContactStatusNew,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// UpdateStatus moves an inquiry along its lifecycle. Unknown status
// values and backward transitions are rejected.
func (s *ContactService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContactStatus) (*models.Contact, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	contact, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !contact.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, contact.Status, status)
	}

	contact.Status = status
	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete removes an inquiry. Deleting a missing ID returns
// repository.ErrNotFound.
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.contacts.Delete(ctx, id)
}
