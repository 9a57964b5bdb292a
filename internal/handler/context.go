package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// userIDFromContext extracts the authenticated user ID from the token the JWT
// middleware stored on the context.
func userIDFromContext(c echo.Context) (uint, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
