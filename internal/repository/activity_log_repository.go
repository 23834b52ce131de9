package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"halladmin/internal/model"
)

// ActivityLogRepository defines audit log persistence operations. The table
// is append-only: there are no update or delete operations on purpose.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	CreateBatch(ctx context.Context, entries []model.ActivityLog) error
	ListRecent(ctx context.Context, limit int) ([]model.ActivityLog, error)
	CountSince(ctx context.Context, t time.Time) (int64, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository.
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityLogRepository) CreateBatch(ctx context.Context, entries []model.ActivityLog) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *activityLogRepository) ListRecent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *activityLogRepository) CountSince(ctx context.Context, t time.Time) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.ActivityLog{}).
		Where("created_at >= ?", t).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
