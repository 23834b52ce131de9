package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

// A column default on is_active would make GORM skip the field on insert
// whenever the value is false, storing true instead of the written value.
func TestUser_IsActiveHasNoColumnDefault(t *testing.T) {
	s, err := schema.Parse(&User{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	field := s.LookUpField("IsActive")
	if assert.NotNil(t, field) {
		assert.False(t, field.HasDefaultValue)
		assert.Empty(t, field.DefaultValue)
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleSupervisor))
	assert.True(t, ValidRole(RoleAgent))
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
