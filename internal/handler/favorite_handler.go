package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"globetrotter/internal/errors"
	"globetrotter/internal/model"
	"globetrotter/internal/service"
)

// FavoriteHandler handles favorite country endpoints.
type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

// NewFavoriteHandler creates a new favorite handler.
func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// ToggleFavoriteRequest represents a favorite toggle request. Name and flag
// are optional because a removal call only carries the code.
type ToggleFavoriteRequest struct {
	CountryCode string `json:"countryCode" validate:"required,min=2,max=8"`
	CountryName string `json:"countryName" validate:"max=255"`
	FlagURL     string `json:"flagUrl" validate:"omitempty,url,max=512"`
}

// FavoritesResponse represents a user's full favorite collection.
type FavoritesResponse struct {
	FavoriteCountries []model.FavoriteCountry `json:"favoriteCountries"`
}

// ListFavorites godoc
// @Summary List the caller's favorite countries
// @Tags favorites
// @Produce json
// @Security AccessToken
// @Success 200 {object} FavoritesResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	favorites, err := h.favoriteService.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, FavoritesResponse{FavoriteCountries: favorites})
}

// ToggleFavorite godoc
// @Summary Toggle a country in the caller's favorites
// @Description Adds the country if absent, removes it if present, and returns the resulting collection.
// @Tags favorites
// @Accept json
// @Produce json
// @Security AccessToken
// @Param request body ToggleFavoriteRequest true "Country to toggle"
// @Success 200 {object} FavoritesResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /favorites/toggle [put]
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req ToggleFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	favorites, err := h.favoriteService.Toggle(c.Request().Context(), userID, req.CountryCode, req.CountryName, req.FlagURL)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, FavoritesResponse{FavoriteCountries: favorites})
}
