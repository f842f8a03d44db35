package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactStatus is the lifecycle state of a patient inquiry.
type ContactStatus string

const (
	ContactStatusNew       ContactStatus = "new"
	ContactStatusContacted ContactStatus = "contacted"
	ContactStatusResolved  ContactStatus = "resolved"
)

// Valid reports whether s is a member of the closed enumeration.
func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusContacted, ContactStatusResolved:
		return true
	}
	return false
}

// contactTransitions is the forward-only lifecycle: new -> contacted -> resolved.
var contactTransitions = map[ContactStatus][]ContactStatus{
	ContactStatusNew:       {ContactStatusContacted},
	ContactStatusContacted: {ContactStatusResolved},
	ContactStatusResolved:  {},
}

// CanTransitionTo reports whether the lifecycle permits moving from s
// to next. Writing the current status back is always allowed.
func (s ContactStatus) CanTransitionTo(next ContactStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range contactTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Contact is a patient inquiry submitted through the public form.
type Contact struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string        `gorm:"type:varchar(255);not null" json:"name"`
	Email     string        `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string        `gorm:"type:varchar(50);not null" json:"phone"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Status    ContactStatus `gorm:"type:varchar(20);not null;default:'new';index" json:"status"`
	CreatedAt time.Time     `gorm:"index" json:"createdAt"`
}

func (Contact) TableName() string {
	return "contacts"
}

// BeforeCreate hook
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = ContactStatusNew
	}
	return nil
}

// ContactCreateRequest is the public intake payload.
type ContactCreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactStatusRequest updates an inquiry's lifecycle state.
type ContactStatusRequest struct {
	Status ContactStatus `json:"status"`
}
