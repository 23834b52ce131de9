package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"halladmin/internal/auth"
	"halladmin/internal/cache"
	apperrors "halladmin/internal/errors"
	"halladmin/internal/metrics"
	"halladmin/internal/model"
	"halladmin/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// mysqlDuplicateEntry is the MySQL error number for a unique key violation.
const mysqlDuplicateEntry = 1062

// CreateUserInput carries the fields for a new user account. PIN format and
// confirmation matching are request-layer concerns validated before this
// input is built.
type CreateUserInput struct {
	Username   string
	PIN        string
	Role       string
	HallNumber *int
	IsActive   bool
}

// UserService exposes user administration operations.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput, creatorID uuid.UUID) (*model.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool, actorID uuid.UUID) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
	audit AuditRecorder
}

// NewUserService builds a UserService with repository, cache and audit recorder.
func NewUserService(repo repository.UserRepository, cache *cache.Client, audit AuditRecorder) UserService {
	return &userService{repo: repo, cache: cache, audit: audit}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s", id)
}

// CreateUser digests the PIN, applies the role/hall invariant and inserts the
// new account. The store's uniqueness constraint on username decides races:
// the loser observes ErrDuplicateUsername.
func (s *userService) CreateUser(ctx context.Context, input CreateUserInput, creatorID uuid.UUID) (*model.User, error) {
	scope, err := ScopeFor(input.Role, input.HallNumber)
	if err != nil {
		return nil, err
	}

	pinHash, err := auth.HashPIN(input.PIN)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}

	// Admins cover all halls, so no hall is stored for them.
	var hall *int
	if !scope.AllHalls {
		h := scope.Hall
		hall = &h
	}

	user := &model.User{
		Username:   input.Username,
		PINHash:    pinHash,
		Role:       input.Role,
		HallNumber: hall,
		IsActive:   input.IsActive,
		CreatedBy:  &creatorID,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isDuplicateEntry(err) {
			return nil, apperrors.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.audit.Record(creatorID, model.ActionCreateUser,
		fmt.Sprintf("created user: %s (%s)", user.Username, user.Role))
	metrics.UsersCreatedTotal.WithLabelValues(user.Role).Inc()

	return user, nil
}

// SetActive flips the login gate. Idempotent: setting the stored value again
// is a no-op and records no additional audit entry.
func (s *userService) SetActive(ctx context.Context, id uuid.UUID, active bool, actorID uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user.IsActive == active {
		return user, nil
	}

	user.IsActive = active
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))

	action := model.ActionActivateUser
	verb := "activated"
	if !active {
		action = model.ActionDeactivateUser
		verb = "deactivated"
	}
	s.audit.Record(actorID, action, fmt.Sprintf("%s user: %s", verb, user.Username))

	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// isDuplicateEntry reports whether err is a unique constraint violation.
func isDuplicateEntry(err error) bool {
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
