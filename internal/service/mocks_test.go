package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"halladmin/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, t time.Time) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenStore is a mock implementation of auth.TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uuid.UUID, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uuid.UUID, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uuid.UUID), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MockActivityLogRepository is a mock implementation of repository.ActivityLogRepository.
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) CreateBatch(ctx context.Context, entries []model.ActivityLog) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockActivityLogRepository) ListRecent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) CountSince(ctx context.Context, t time.Time) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

// MockHallDataRepository is a mock implementation of repository.HallDataRepository.
type MockHallDataRepository struct {
	mock.Mock
}

func (m *MockHallDataRepository) Create(ctx context.Context, record *model.HallData) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHallDataRepository) ListByHall(ctx context.Context, hall int) ([]model.HallData, error) {
	args := m.Called(ctx, hall)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HallData), args.Error(1)
}

func (m *MockHallDataRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHallDataRepository) CountByHall(ctx context.Context, hall int) (int64, error) {
	args := m.Called(ctx, hall)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHallDataRepository) CountByHallSince(ctx context.Context, hall int, t time.Time) (int64, error) {
	args := m.Called(ctx, hall, t)
	return args.Get(0).(int64), args.Error(1)
}

// fakeAudit captures audit events synchronously for assertions.
type fakeAudit struct {
	mu     sync.Mutex
	events []fakeAuditEvent
}

type fakeAuditEvent struct {
	actorID uuid.UUID
	action  string
	details string
}

func (f *fakeAudit) Record(actorID uuid.UUID, action, details string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, fakeAuditEvent{actorID: actorID, action: action, details: details})
}

func (f *fakeAudit) Recent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	return nil, nil
}

func (f *fakeAudit) Close() {}

func (f *fakeAudit) recorded() []fakeAuditEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]fakeAuditEvent, len(f.events))
	copy(out, f.events)
	return out
}
