package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"globetrotter/internal/model"
)

// RoleRepository defines role catalog persistence operations.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*model.Role, error)
	FindByNames(ctx context.Context, names []string) ([]model.Role, error)
	EnsureCatalog(ctx context.Context) error
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository builds a GORM-backed role repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindByNames(ctx context.Context, names []string) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Where("name IN ?", names).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

// EnsureCatalog seeds the fixed role catalog, creating only the names that do
// not exist yet. Safe to run on every startup.
func (r *roleRepository) EnsureCatalog(ctx context.Context) error {
	for _, name := range model.CatalogNames() {
		var existing model.Role
		err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check role %q: %w", name, err)
		}
		if err := r.db.WithContext(ctx).Create(&model.Role{Name: name}).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}
	return nil
}
