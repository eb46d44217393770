package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/config"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testAuthConfig())
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_ValidateToken_Empty(t *testing.T) {
	svc := NewJWTService(testAuthConfig())

	claims, err := svc.ValidateToken("")

	assert.Nil(t, claims)
	assert.ErrorContains(t, err, "empty")
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	svc := NewJWTService(testAuthConfig())

	claims, err := svc.ValidateToken("not-a-jwt")

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService(testAuthConfig())
	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.AuthConfig{
		JWTSecret:       "different-secret",
		ExpirationHours: 24,
		BcryptCost:      10,
	})

	claims, err := other.ValidateToken(token)

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	cfg := testAuthConfig()
	now := time.Now()
	claims := &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			NotBefore: jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	svc := NewJWTService(cfg)
	parsed, err := svc.ValidateToken(signed)

	assert.Nil(t, parsed)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	svc := NewJWTService(testAuthConfig())
	userID := uuid.New()
	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	validator := svc.AsTokenValidator()
	getter, err := validator.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
