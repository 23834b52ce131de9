package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"halladmin/internal/errors"
	"halladmin/internal/model"
)

func TestScopeFor(t *testing.T) {
	hall2 := 2
	hall7 := 7

	tests := []struct {
		name          string
		role          string
		requestedHall *int
		expectedScope Scope
		expectedError error
	}{
		{
			name:          "admin covers all halls",
			role:          model.RoleAdmin,
			requestedHall: nil,
			expectedScope: Scope{AllHalls: true},
		},
		{
			name:          "admin ignores a requested hall",
			role:          model.RoleAdmin,
			requestedHall: &hall2,
			expectedScope: Scope{AllHalls: true},
		},
		{
			name:          "supervisor gets exactly the requested hall",
			role:          model.RoleSupervisor,
			requestedHall: &hall2,
			expectedScope: Scope{Hall: 2},
		},
		{
			name:          "agent gets exactly the requested hall",
			role:          model.RoleAgent,
			requestedHall: &hall2,
			expectedScope: Scope{Hall: 2},
		},
		{
			name:          "supervisor without hall fails",
			role:          model.RoleSupervisor,
			requestedHall: nil,
			expectedError: errors.ErrHallRequired,
		},
		{
			name:          "agent with out-of-range hall fails",
			role:          model.RoleAgent,
			requestedHall: &hall7,
			expectedError: errors.ErrInvalidHall,
		},
		{
			name:          "unknown role fails",
			role:          "janitor",
			requestedHall: &hall2,
			expectedError: errors.ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := ScopeFor(tt.role, tt.requestedHall)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedScope, scope)
		})
	}
}

func TestScope_Allows(t *testing.T) {
	all := Scope{AllHalls: true}
	assert.True(t, all.Allows(1))
	assert.True(t, all.Allows(3))

	one := Scope{Hall: 2}
	assert.True(t, one.Allows(2))
	assert.False(t, one.Allows(1))
	assert.False(t, one.Allows(3))
}

func TestScopeForUser(t *testing.T) {
	hall3 := 3

	admin := &model.User{Role: model.RoleAdmin}
	scope, err := ScopeForUser(admin)
	assert.NoError(t, err)
	assert.True(t, scope.AllHalls)

	agent := &model.User{Role: model.RoleAgent, HallNumber: &hall3}
	scope, err = ScopeForUser(agent)
	assert.NoError(t, err)
	assert.Equal(t, Scope{Hall: 3}, scope)
}
