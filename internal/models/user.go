package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleAdmin is the only role provisioned today. The policy middleware
// still checks it explicitly so additional roles can be added without
// widening access by accident.
const RoleAdmin = "admin"

// User is an administrative account. Users are provisioned out of band
// (or via the seed flag) and never mutated by the API itself.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Role         string    `gorm:"type:varchar(50);not null;default:'admin'" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate hook
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleAdmin
	}
	return nil
}

// PublicUser is the projection returned by login; the password hash
// never leaves the auth service.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// Public returns the caller-facing projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// LoginRequest is the credential payload for /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the minted token and the public user projection.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
