package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestKeyAndVerifier(t *testing.T) (*rsa.PrivateKey, *TokenVerifier) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	verifier, err := NewTokenVerifier(pemBytes)
	if err != nil {
		t.Fatalf("new verifier: %v", err)
	}
	return key, verifier
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims *Claims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseClaimsValidToken(t *testing.T) {
	key, verifier := newTestKeyAndVerifier(t)

	signed := signToken(t, key, &Claims{
		UserID:       42,
		IsInstructor: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := verifier.ParseClaims(signed)
	if err != nil {
		t.Fatalf("parse claims: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if !claims.IsInstructor {
		t.Error("expected instructor flag to be set")
	}
}

func TestParseClaimsExpiredToken(t *testing.T) {
	key, verifier := newTestKeyAndVerifier(t)

	signed := signToken(t, key, &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err := verifier.ParseClaims(signed)
	if !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestParseClaimsWrongKey(t *testing.T) {
	_, verifier := newTestKeyAndVerifier(t)
	otherKey, _ := newTestKeyAndVerifier(t)

	signed := signToken(t, otherKey, &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := verifier.ParseClaims(signed)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseClaimsRejectsGarbage(t *testing.T) {
	_, verifier := newTestKeyAndVerifier(t)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := verifier.ParseClaims(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("token %q: expected ErrInvalidToken, got %v", token, err)
		}
	}
}

func TestParseClaimsRejectsNonPositiveSubject(t *testing.T) {
	key, verifier := newTestKeyAndVerifier(t)

	signed := signToken(t, key, &Claims{
		UserID: 0,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := verifier.ParseClaims(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"", "", true},
		{"abc.def.ghi", "", true},
		{"Basic dXNlcjpwYXNz", "", true},
	}

	for _, tt := range tests {
		got, err := ExtractBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("header %q: expected error", tt.header)
			}
			continue
		}
		if err != nil {
			t.Errorf("header %q: unexpected error %v", tt.header, err)
		}
		if got != tt.want {
			t.Errorf("header %q: expected %q, got %q", tt.header, tt.want, got)
		}
	}
}
