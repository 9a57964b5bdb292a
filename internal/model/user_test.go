package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Authorities(t *testing.T) {
	user := &User{
		Roles: []Role{
			{Name: RoleUser},
			{Name: RoleAdmin},
		},
	}
	assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, user.Authorities())
}

func TestUser_Authorities_NoRoles(t *testing.T) {
	user := &User{}
	assert.Empty(t, user.Authorities())
}

func TestUser_HasRole(t *testing.T) {
	user := &User{Roles: []Role{{Name: RoleModerator}}}
	assert.True(t, user.HasRole(RoleModerator))
	assert.False(t, user.HasRole(RoleAdmin))
}
