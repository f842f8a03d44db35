package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurgerySlot is a time range during which the clinic takes no
// bookings. Created and deleted by an administrator; appointment
// creation rejects times that fall inside a slot.
type SurgerySlot struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	StartTime   time.Time `gorm:"not null;index" json:"startTime"`
	EndTime     time.Time `gorm:"not null" json:"endTime"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   string    `gorm:"type:varchar(100);not null" json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (SurgerySlot) TableName() string {
	return "surgery_slots"
}

// BeforeCreate hook
func (s *SurgerySlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Covers reports whether t falls inside the slot. The end is
// exclusive, so back-to-back slots do not overlap.
func (s *SurgerySlot) Covers(t time.Time) bool {
	return !t.Before(s.StartTime) && t.Before(s.EndTime)
}

// SurgerySlotCreateRequest is the slot creation payload.
type SurgerySlotCreateRequest struct {
	Title       string    `json:"title"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Description string    `json:"description"`
}
