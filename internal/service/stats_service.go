package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"halladmin/internal/cache"
	"halladmin/internal/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// DashboardStats are the headline counts on the dashboard landing page.
type DashboardStats struct {
	TotalUsers     int64 `json:"total_users"`
	ActiveUsers    int64 `json:"active_users"`
	HallDataCount  int64 `json:"hall_data_count"`
	RecentActivity int64 `json:"recent_activity"`
}

// StatsService aggregates dashboard counts.
type StatsService interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	userRepo repository.UserRepository
	hallRepo repository.HallDataRepository
	logRepo  repository.ActivityLogRepository
	cache    *cache.Client
	now      func() time.Time
}

// NewStatsService builds a StatsService. now may be nil, in which case
// time.Now is used.
func NewStatsService(
	userRepo repository.UserRepository,
	hallRepo repository.HallDataRepository,
	logRepo repository.ActivityLogRepository,
	cache *cache.Client,
	now func() time.Time,
) StatsService {
	if now == nil {
		now = time.Now
	}
	return &statsService{
		userRepo: userRepo,
		hallRepo: hallRepo,
		logRepo:  logRepo,
		cache:    cache,
		now:      now,
	}
}

// DashboardStats returns the dashboard counts, served from the cache when a
// fresh snapshot exists.
func (s *statsService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached DashboardStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	activeUsers, err := s.userRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active users: %w", err)
	}
	hallData, err := s.hallRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count hall data: %w", err)
	}
	recent, err := s.logRepo.CountSince(ctx, s.now().UTC().Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("count recent activity: %w", err)
	}

	stats := &DashboardStats{
		TotalUsers:     totalUsers,
		ActiveUsers:    activeUsers,
		HallDataCount:  hallData,
		RecentActivity: recent,
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}
	return stats, nil
}
