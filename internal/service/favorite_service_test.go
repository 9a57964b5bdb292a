package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"globetrotter/internal/model"
)

// MockFavoriteRepository is a mock implementation of FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID uint) ([]model.FavoriteCountry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FavoriteCountry), args.Error(1)
}

func (m *MockFavoriteRepository) Toggle(ctx context.Context, userID uint, entry *model.FavoriteCountry) (bool, error) {
	args := m.Called(ctx, userID, entry)
	return args.Bool(0), args.Error(1)
}

func TestFavoriteService_Toggle_RoundTrip(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	franceEntry := model.FavoriteCountry{UserID: 7, CountryCode: "FRA", CountryName: "France", FlagURL: "https://flagcdn.com/fr.png"}

	// First toggle adds the entry, second one removes it again.
	mockRepo.On("Toggle", mock.Anything, uint(7), mock.AnythingOfType("*model.FavoriteCountry")).Return(true, nil).Once()
	mockRepo.On("ListByUser", mock.Anything, uint(7)).Return([]model.FavoriteCountry{franceEntry}, nil).Once()
	mockRepo.On("Toggle", mock.Anything, uint(7), mock.AnythingOfType("*model.FavoriteCountry")).Return(false, nil).Once()
	mockRepo.On("ListByUser", mock.Anything, uint(7)).Return([]model.FavoriteCountry{}, nil).Once()

	service := NewFavoriteService(mockRepo, nil)

	favorites, err := service.Toggle(context.Background(), 7, "FRA", "France", "https://flagcdn.com/fr.png")
	assert.NoError(t, err)
	assert.Len(t, favorites, 1)
	assert.Equal(t, "FRA", favorites[0].CountryCode)

	favorites, err = service.Toggle(context.Background(), 7, "FRA", "France", "https://flagcdn.com/fr.png")
	assert.NoError(t, err)
	assert.Empty(t, favorites)

	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_Toggle_TwoCountries(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	france := model.FavoriteCountry{UserID: 7, CountryCode: "FRA", CountryName: "France"}
	germany := model.FavoriteCountry{UserID: 7, CountryCode: "DEU", CountryName: "Germany"}

	mockRepo.On("Toggle", mock.Anything, uint(7), mock.AnythingOfType("*model.FavoriteCountry")).Return(true, nil).Twice()
	mockRepo.On("ListByUser", mock.Anything, uint(7)).Return([]model.FavoriteCountry{france}, nil).Once()
	mockRepo.On("ListByUser", mock.Anything, uint(7)).Return([]model.FavoriteCountry{france, germany}, nil).Once()

	service := NewFavoriteService(mockRepo, nil)

	_, err := service.Toggle(context.Background(), 7, "FRA", "France", "")
	assert.NoError(t, err)

	favorites, err := service.Toggle(context.Background(), 7, "DEU", "Germany", "")
	assert.NoError(t, err)
	assert.Len(t, favorites, 2)
	assert.Equal(t, "FRA", favorites[0].CountryCode)
	assert.Equal(t, "DEU", favorites[1].CountryCode)

	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_Toggle_PassesEntryFields(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	mockRepo.On("Toggle", mock.Anything, uint(3), mock.MatchedBy(func(entry *model.FavoriteCountry) bool {
		return entry.CountryCode == "JPN" && entry.CountryName == "Japan" && entry.FlagURL == "https://flagcdn.com/jp.png"
	})).Return(true, nil)
	mockRepo.On("ListByUser", mock.Anything, uint(3)).Return([]model.FavoriteCountry{}, nil)

	service := NewFavoriteService(mockRepo, nil)
	_, err := service.Toggle(context.Background(), 3, "JPN", "Japan", "https://flagcdn.com/jp.png")
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestFavoriteService_List_EmptyCollection(t *testing.T) {
	mockRepo := new(MockFavoriteRepository)
	mockRepo.On("ListByUser", mock.Anything, uint(9)).Return(nil, nil)

	service := NewFavoriteService(mockRepo, nil)
	favorites, err := service.List(context.Background(), 9)

	// A user without favorites gets an empty collection, never an error.
	assert.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)

	mockRepo.AssertExpectations(t)
}
