package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a user account can hold.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleAgent      = "agent"
)

// User represents one login identity of the hall administration dashboard.
//
// Invariant: HallNumber is nil iff Role is admin; supervisors and agents are
// assigned exactly one hall in 1..3.
type User struct {
	ID         uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Username   string     `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PINHash    string     `json:"-" gorm:"column:pin_hash;size:255;not null"` // Never expose in JSON
	Role       string     `json:"role" gorm:"size:50;not null;index"`
	HallNumber *int       `json:"hall_number" gorm:"index"`
	// No column default: GORM skips zero-valued fields that carry one on
	// insert, so a false value would be stored as true. Every create path
	// sets the value explicitly.
	IsActive   bool       `json:"is_active" gorm:"not null;index"`
	LastLogin  *time.Time `json:"last_login"`
	CreatedBy  *uuid.UUID `json:"created_by" gorm:"type:char(36)"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSupervisor || role == RoleAgent
}
