package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// Identity is the authenticated user as reported by the identity provider.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// TokenValidator checks a bearer token and resolves the identity behind it.
// The production implementation verifies Supabase-issued access tokens;
// tests substitute a fake.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*Identity, error)
}

type accessTokenClaims struct {
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
	jwt.RegisteredClaims
}

// JWTValidator verifies HS256 access tokens locally using the identity
// provider's signing secret, avoiding a network round trip per request.
type JWTValidator struct {
	secret []byte
}

func NewJWTValidator(secret string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret)}
}

func (v *JWTValidator) Validate(_ context.Context, tokenString string) (*Identity, error) {
	claims := &accessTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %v", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid or expired token")
	}

	return &Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Name:   displayName(claims),
	}, nil
}

func displayName(claims *accessTokenClaims) string {
	if name, ok := claims.UserMetadata["name"].(string); ok && name != "" {
		return name
	}
	return NameFromEmail(claims.Email)
}

// NameFromEmail derives a display name from the local part of an email
// address, capitalized. Used whenever the provider has no profile name.
func NameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return strings.ToUpper(local[:1]) + local[1:]
}
