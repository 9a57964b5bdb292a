package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	tokenID, token, err := service.GenerateToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, tokenID, claims.ID)
}

func TestJWTService_ExpirySetToTokenExpiry(t *testing.T) {
	service := NewJWTService("test-secret")

	_, token, err := service.GenerateToken(1)
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_WrongSecret(t *testing.T) {
	_, token, err := NewJWTService("right-secret").GenerateToken(42)
	assert.NoError(t, err)

	_, err = NewJWTService("wrong-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test-secret"
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})
	token, err := expired.SignedString([]byte(secret))
	assert.NoError(t, err)

	_, err = NewJWTService(secret).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	_, err := NewJWTService("test-secret").ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
