package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"halladmin/internal/model"
)

// HallDataRepository defines hall data persistence operations.
type HallDataRepository interface {
	Create(ctx context.Context, record *model.HallData) error
	ListByHall(ctx context.Context, hall int) ([]model.HallData, error)
	Count(ctx context.Context) (int64, error)
	CountByHall(ctx context.Context, hall int) (int64, error)
	CountByHallSince(ctx context.Context, hall int, t time.Time) (int64, error)
}

type hallDataRepository struct {
	db *gorm.DB
}

// NewHallDataRepository creates a new hall data repository.
func NewHallDataRepository(db *gorm.DB) HallDataRepository {
	return &hallDataRepository{db: db}
}

func (r *hallDataRepository) Create(ctx context.Context, record *model.HallData) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *hallDataRepository) ListByHall(ctx context.Context, hall int) ([]model.HallData, error) {
	var records []model.HallData
	if err := r.db.WithContext(ctx).Where("hall_number = ?", hall).
		Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *hallDataRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.HallData{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *hallDataRepository) CountByHall(ctx context.Context, hall int) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.HallData{}).
		Where("hall_number = ?", hall).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *hallDataRepository) CountByHallSince(ctx context.Context, hall int, t time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.HallData{}).
		Where("hall_number = ? AND created_at >= ?", hall, t).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
