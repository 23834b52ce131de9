package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Action tags recorded in the activity log.
const (
	ActionLogin            = "LOGIN"
	ActionLogout           = "LOGOUT"
	ActionCreateUser       = "CREATE_USER"
	ActionActivateUser     = "ACTIVATE_USER"
	ActionDeactivateUser   = "DEACTIVATE_USER"
	ActionCreateHallRecord = "CREATE_HALL_RECORD"
)

// ActivityLog is an append-only audit record. Once written it is never
// mutated or deleted by this service.
type ActivityLog struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;index"`
	Action    string    `json:"action" gorm:"size:50;not null;index"`
	Details   string    `json:"details" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
