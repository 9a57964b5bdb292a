package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"globetrotter/internal/model"
)

func TestRoleRepository_EnsureCatalog(t *testing.T) {
	db := newTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.EnsureCatalog(ctx))
	// Seeding again must not duplicate the catalog.
	require.NoError(t, repo.EnsureCatalog(ctx))

	var count int64
	require.NoError(t, db.Model(&model.Role{}).Count(&count).Error)
	assert.EqualValues(t, len(model.CatalogNames()), count)

	role, err := repo.FindByName(ctx, model.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role.Name)

	roles, err := repo.FindByNames(ctx, []string{model.RoleUser, model.RoleModerator})
	assert.NoError(t, err)
	assert.Len(t, roles, 2)
}

func TestRoleRepository_FindByName_Unknown(t *testing.T) {
	repo := NewRoleRepository(newTestDB(t))

	_, err := repo.FindByName(context.Background(), "superadmin")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
