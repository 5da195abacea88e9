package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/khushal/hello-grpc/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "user-123"

	tok, err := GenerateToken(userID, TokenKindAccess, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID() != userID {
		t.Fatalf("userID mismatch: got %q want %q", claims.UserID(), userID)
	}
	if claims.Kind != TokenKindAccess {
		t.Fatalf("kind mismatch: got %q want %q", claims.Kind, TokenKindAccess)
	}
}

func TestParseToken_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tok, err := generateTokenAt("u1", TokenKindAccess, secret, 30*time.Minute, t0)
	if err != nil {
		t.Fatalf("generateTokenAt error: %v", err)
	}

	if _, err := parseTokenAt(tok, secret, t0.Add(29*time.Minute)); err != nil {
		t.Fatalf("expected token valid at t0+29m, got %v", err)
	}

	_, err = parseTokenAt(tok, secret, t0.Add(31*time.Minute))
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired at t0+31m, got %v", err)
	}
}

func TestParseToken_RefreshKindAndValidity(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tok, err := generateTokenAt("u1", TokenKindRefresh, secret, 7*24*time.Hour, t0)
	if err != nil {
		t.Fatalf("generateTokenAt error: %v", err)
	}

	claims, err := parseTokenAt(tok, secret, t0.Add(6*24*time.Hour))
	if err != nil {
		t.Fatalf("expected refresh token valid after 6 days, got %v", err)
	}
	if claims.Kind != TokenKindRefresh {
		t.Fatalf("kind mismatch: got %q", claims.Kind)
	}

	if _, err := parseTokenAt(tok, secret, t0.Add(8*24*time.Hour)); !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired after 8 days, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", TokenKindAccess, []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, []byte("wrong-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.token", []byte("secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
