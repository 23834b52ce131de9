package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HallData is one per-hall data record entered by an agent or supervisor.
type HallData struct {
	ID         uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	HallNumber int             `json:"hall_number" gorm:"not null;index"`
	EntryDate  time.Time       `json:"entry_date" gorm:"not null;index"`
	Attendance int             `json:"attendance"`
	Revenue    decimal.Decimal `json:"revenue" gorm:"type:decimal(12,2)"`
	Notes      string          `json:"notes" gorm:"type:text"`
	CreatedBy  uuid.UUID       `json:"created_by" gorm:"type:char(36);not null;index"`
	CreatedAt  time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (h *HallData) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
