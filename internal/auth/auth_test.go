package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidate_ValidToken(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-123",
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	identity, err := validator.Validate(context.Background(), tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.UserID)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "Alice", identity.Name)
}

func TestValidate_MetadataName(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub":           "user-123",
		"email":         "alice@example.com",
		"user_metadata": map[string]any{"name": "Alice Liddell"},
		"exp":           time.Now().Add(time.Hour).Unix(),
	})

	identity, err := validator.Validate(context.Background(), tokenString)
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", identity.Name)
}

func TestValidate_WrongSecret(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	tokenString := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := validator.Validate(context.Background(), tokenString)
	assert.Error(t, err)
}

func TestValidate_ExpiredToken(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := validator.Validate(context.Background(), tokenString)
	assert.Error(t, err)
}

func TestValidate_MissingSubject(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := validator.Validate(context.Background(), tokenString)
	assert.Error(t, err)
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "Alice", NameFromEmail("alice@example.com"))
	assert.Equal(t, "Bob.smith", NameFromEmail("bob.smith@example.com"))
	assert.Equal(t, "not-an-email", NameFromEmail("not-an-email"))
}
