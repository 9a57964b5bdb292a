package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globetrotter/internal/model"
)

func TestUserRepository_CreateWithRoles(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, NewRoleRepository(db).EnsureCatalog(context.Background()))
	repo := NewUserRepository(db)
	ctx := context.Background()

	role, err := NewRoleRepository(db).FindByName(ctx, model.RoleUser)
	require.NoError(t, err)

	user := &model.User{
		Username:     "traveler",
		Email:        "traveler@example.com",
		PasswordHash: "not-a-real-hash",
		Roles:        []model.Role{*role},
	}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByUsername(ctx, "traveler")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	require.Len(t, found.Roles, 1)
	assert.Equal(t, model.RoleUser, found.Roles[0].Name)
}

func TestUserRepository_DuplicateUsernameRejected(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.User{Username: "traveler", Email: "a@example.com", PasswordHash: "h"}))
	err := repo.Create(ctx, &model.User{Username: "traveler", Email: "b@example.com", PasswordHash: "h"})
	assert.Error(t, err)
}
