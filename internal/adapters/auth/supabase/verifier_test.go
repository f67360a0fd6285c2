package supabase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "super-secret-test-key"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "user-123",
		"email": "owner@example.com",
		"role":  "authenticated",
		"aud":   "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestVerify_ValidToken(t *testing.T) {
	v := NewVerifier(testSecret)
	if v == nil {
		t.Fatalf("expected a verifier for a non-empty secret")
	}

	token := signToken(t, testSecret, validClaims())

	got, err := v.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got.UserID != "user-123" {
		t.Errorf("UserID = %q, want user-123", got.UserID)
	}
	if got.Email != "owner@example.com" {
		t.Errorf("Email = %q", got.Email)
	}
	if got.Role != "authenticated" {
		t.Errorf("Role = %q", got.Role)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	v := NewVerifier(testSecret)
	token := signToken(t, "another-secret", validClaims())

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	v := NewVerifier(testSecret)
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, testSecret, claims)

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestVerify_MissingExpiration(t *testing.T) {
	v := NewVerifier(testSecret)
	claims := validClaims()
	delete(claims, "exp")
	token := signToken(t, testSecret, claims)

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid without exp, got %v", err)
	}
}

func TestVerify_WrongAudience(t *testing.T) {
	v := NewVerifier(testSecret)
	claims := validClaims()
	claims["aud"] = "anon"
	token := signToken(t, testSecret, claims)

	if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong audience, got %v", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	v := NewVerifier(testSecret)
	claims := validClaims()
	delete(claims, "sub")
	token := signToken(t, testSecret, claims)

	if _, err := v.Verify(context.Background(), token); err == nil {
		t.Fatalf("expected error for token without sub")
	}
}

func TestVerify_EmptyToken(t *testing.T) {
	v := NewVerifier(testSecret)

	if _, err := v.Verify(context.Background(), "   "); !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}

func TestNewVerifier_EmptySecretReturnsNil(t *testing.T) {
	if v := NewVerifier("  "); v != nil {
		t.Fatalf("expected nil verifier for blank secret")
	}
}
