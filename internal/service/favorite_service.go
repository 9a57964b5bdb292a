package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"globetrotter/internal/cache"
	"globetrotter/internal/model"
	"globetrotter/internal/repository"
)

const favoritesCacheTTL = 5 * time.Minute

// FavoriteService handles a user's favorite country collection.
type FavoriteService interface {
	List(ctx context.Context, userID uint) ([]model.FavoriteCountry, error)
	Toggle(ctx context.Context, userID uint, code, name, flagURL string) ([]model.FavoriteCountry, error)
}

type favoriteService struct {
	repo  repository.FavoriteRepository
	cache *cache.Client
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(repo repository.FavoriteRepository, cache *cache.Client) FavoriteService {
	return &favoriteService{
		repo:  repo,
		cache: cache,
	}
}

func (s *favoriteService) cacheKey(userID uint) string {
	return fmt.Sprintf("favorites:%d", userID)
}

// List returns the user's full favorite collection, empty if none exists yet.
func (s *favoriteService) List(ctx context.Context, userID uint) ([]model.FavoriteCountry, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached []model.FavoriteCountry
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if favorites == nil {
		favorites = []model.FavoriteCountry{}
	}

	if payload, err := json.Marshal(favorites); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, favoritesCacheTTL)
	}
	return favorites, nil
}

// Toggle adds the entry if the country code is absent from the collection,
// removes it if present, and returns the resulting full collection.
func (s *favoriteService) Toggle(ctx context.Context, userID uint, code, name, flagURL string) ([]model.FavoriteCountry, error) {
	entry := &model.FavoriteCountry{
		CountryCode: code,
		CountryName: name,
		FlagURL:     flagURL,
	}
	if _, err := s.repo.Toggle(ctx, userID, entry); err != nil {
		return nil, fmt.Errorf("toggle favorite: %w", err)
	}

	// Invalidate before re-reading so the cache never outlives the write.
	_ = s.cache.Delete(ctx, s.cacheKey(userID))

	favorites, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if favorites == nil {
		favorites = []model.FavoriteCountry{}
	}

	if payload, err := json.Marshal(favorites); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, favoritesCacheTTL)
	}
	return favorites, nil
}
