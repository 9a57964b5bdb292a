package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"globetrotter/internal/errors"
	"globetrotter/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=64"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Roles    []string `json:"roles"`
}

// SigninRequest represents a login request.
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse represents a plain acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password, req.Roles); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "User was registered successfully!",
	})
}

// Signin godoc
// @Summary Authenticate and obtain a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SigninRequest true "Login credentials"
// @Success 200 {object} service.Identity
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, identity)
}

// Signout godoc
// @Summary Terminate the current session
// @Tags auth
// @Produce json
// @Security AccessToken
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/signout [post]
func (h *AuthHandler) Signout(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	// Clearing is idempotent, signing out twice is fine.
	if err := h.authService.Logout(c.Request().Context(), userID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: "You've been signed out!",
	})
}
