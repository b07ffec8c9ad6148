package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// JWT errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// Claims defines the payload this service trusts from the user service's
// tokens. The user service issues them; this service only verifies.
type Claims struct {
	UserID       int64 `json:"id"`
	IsInstructor bool  `json:"is_instructor"`
	jwt.RegisteredClaims
}

// TokenVerifier validates RS256 tokens signed by the user service.
type TokenVerifier struct {
	publicKey *rsa.PublicKey
}

// NewTokenVerifier creates a TokenVerifier from a PEM-encoded RSA public key.
func NewTokenVerifier(publicKeyPEM []byte) (*TokenVerifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}
	return &TokenVerifier{publicKey: key}, nil
}

// ParseClaims verifies the token signature and expiry and returns its claims.
func (v *TokenVerifier) ParseClaims(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidFormat
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", ErrInvalidFormat
	}
	return strings.TrimPrefix(authHeader, "Bearer "), nil
}
