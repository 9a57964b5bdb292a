package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"globetrotter/internal/model"
)

// FavoriteRepository defines favorite collection persistence operations.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]model.FavoriteCountry, error)
	Toggle(ctx context.Context, userID uint, entry *model.FavoriteCountry) (added bool, err error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository builds a GORM-backed favorite repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// ListByUser returns the user's favorites in insertion order.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]model.FavoriteCountry, error) {
	var favorites []model.FavoriteCountry
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// Toggle removes the entry matching the country code if present, otherwise
// inserts it. Both steps run in one transaction, and the insert relies on the
// composite unique index on (user_id, country_code): if two identical toggles
// race, only one insert lands and the other becomes a no-op instead of a
// duplicate row.
func (r *favoriteRepository) Toggle(ctx context.Context, userID uint, entry *model.FavoriteCountry) (bool, error) {
	added := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND country_code = ?", userID, entry.CountryCode).
			Delete(&model.FavoriteCountry{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		entry.UserID = userID
		insert := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(entry)
		if insert.Error != nil {
			return insert.Error
		}
		added = insert.RowsAffected > 0
		return nil
	})
	return added, err
}
