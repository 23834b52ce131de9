package service

import (
	"context"
	"testing"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"halladmin/internal/auth"
	apperrors "halladmin/internal/errors"
	"halladmin/internal/model"
)

func TestUserService_CreateUser(t *testing.T) {
	creatorID := uuid.New()
	hall2 := 2
	hall9 := 9

	tests := []struct {
		name          string
		input         CreateUserInput
		setupMock     func(*MockUserRepository)
		expectedError error
		checkUser     func(*testing.T, *model.User)
	}{
		{
			name: "admin gets no hall even when one is requested",
			input: CreateUserInput{
				Username:   "boss",
				PIN:        "1234",
				Role:       model.RoleAdmin,
				HallNumber: &hall2,
				IsActive:   true,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			checkUser: func(t *testing.T, u *model.User) {
				assert.Nil(t, u.HallNumber)
				assert.Equal(t, model.RoleAdmin, u.Role)
			},
		},
		{
			name: "agent stores the assigned hall",
			input: CreateUserInput{
				Username:   "agent1",
				PIN:        "1234",
				Role:       model.RoleAgent,
				HallNumber: &hall2,
				IsActive:   true,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			checkUser: func(t *testing.T, u *model.User) {
				if assert.NotNil(t, u.HallNumber) {
					assert.Equal(t, 2, *u.HallNumber)
				}
				assert.True(t, auth.CheckPIN(u.PINHash, "1234"))
				if assert.NotNil(t, u.CreatedBy) {
					assert.Equal(t, creatorID, *u.CreatedBy)
				}
			},
		},
		{
			name: "deactivated create stays deactivated",
			input: CreateUserInput{
				Username:   "agent2",
				PIN:        "1234",
				Role:       model.RoleAgent,
				HallNumber: &hall2,
				IsActive:   false,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			checkUser: func(t *testing.T, u *model.User) {
				assert.False(t, u.IsActive)
			},
		},
		{
			name: "supervisor without hall is rejected",
			input: CreateUserInput{
				Username: "sup1",
				PIN:      "1234",
				Role:     model.RoleSupervisor,
			},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrHallRequired,
		},
		{
			name: "hall outside 1..3 is rejected",
			input: CreateUserInput{
				Username:   "agent9",
				PIN:        "1234",
				Role:       model.RoleAgent,
				HallNumber: &hall9,
			},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidHall,
		},
		{
			name: "unknown role is rejected",
			input: CreateUserInput{
				Username: "x",
				PIN:      "1234",
				Role:     "superuser",
			},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidRole,
		},
		{
			name: "duplicate username maps to a distinct error",
			input: CreateUserInput{
				Username:   "agent1",
				PIN:        "1234",
				Role:       model.RoleAgent,
				HallNumber: &hall2,
			},
			setupMock: func(m *MockUserRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(&gomysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
			},
			expectedError: apperrors.ErrDuplicateUsername,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			audit := &fakeAudit{}
			svc := NewUserService(mockRepo, nil, audit)

			user, err := svc.CreateUser(context.Background(), tt.input, creatorID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Empty(t, audit.recorded())
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				if tt.checkUser != nil {
					tt.checkUser(t, user)
				}
				events := audit.recorded()
				if assert.Len(t, events, 1) {
					assert.Equal(t, model.ActionCreateUser, events[0].action)
					assert.Equal(t, creatorID, events[0].actorID)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_SetActive(t *testing.T) {
	actorID := uuid.New()
	userID := uuid.New()

	t.Run("deactivation is persisted and audited", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:       userID,
			Username: "agent1",
			Role:     model.RoleAgent,
			IsActive: true,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		audit := &fakeAudit{}
		svc := NewUserService(mockRepo, nil, audit)

		user, err := svc.SetActive(context.Background(), userID, false, actorID)
		assert.NoError(t, err)
		assert.False(t, user.IsActive)

		events := audit.recorded()
		if assert.Len(t, events, 1) {
			assert.Equal(t, model.ActionDeactivateUser, events[0].action)
			assert.Equal(t, actorID, events[0].actorID)
		}
		mockRepo.AssertExpectations(t)
	})

	t.Run("setting the stored value again is a no-op", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:       userID,
			Username: "agent1",
			Role:     model.RoleAgent,
			IsActive: true,
		}, nil)

		audit := &fakeAudit{}
		svc := NewUserService(mockRepo, nil, audit)

		user, err := svc.SetActive(context.Background(), userID, true, actorID)
		assert.NoError(t, err)
		assert.True(t, user.IsActive)
		assert.Empty(t, audit.recorded())

		// Update must not be called for an unchanged value.
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, nil, &fakeAudit{})
		user, err := svc.SetActive(context.Background(), userID, true, actorID)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
		assert.Nil(t, user)
	})
}

func TestUserService_DigestIsSaltedPerUser(t *testing.T) {
	creatorID := uuid.New()
	hall1 := 1

	mockRepo := new(MockUserRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewUserService(mockRepo, nil, &fakeAudit{})

	first, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "a", PIN: "1234", Role: model.RoleAgent, HallNumber: &hall1,
	}, creatorID)
	assert.NoError(t, err)
	second, err := svc.CreateUser(context.Background(), CreateUserInput{
		Username: "b", PIN: "1234", Role: model.RoleAgent, HallNumber: &hall1,
	}, creatorID)
	assert.NoError(t, err)

	assert.NotEqual(t, first.PINHash, second.PINHash)
	assert.True(t, auth.CheckPIN(first.PINHash, "1234"))
	assert.True(t, auth.CheckPIN(second.PINHash, "1234"))
	assert.False(t, auth.CheckPIN(first.PINHash, "4321"))
}
