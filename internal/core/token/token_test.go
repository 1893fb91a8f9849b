package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/salesdesk/sales-api/internal/core/domain"
)

func newManager(t *testing.T, secret string) *Manager {
	t.Helper()
	m, err := NewManager(secret)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}

func TestIssueValidate_RoundTrip(t *testing.T) {
	m := newManager(t, "secret")

	tok, err := m.Issue(domain.TokenPayload{UserID: 42, Email: "demo@demo.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected non-empty token")
	}

	got, err := m.Validate(tok)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got.UserID != 42 || got.Email != "demo@demo.com" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestIssue_Deterministic(t *testing.T) {
	m := newManager(t, "secret")
	p := domain.TokenPayload{UserID: 7, Email: "a@b.com"}

	a, _ := m.Issue(p)
	b, _ := m.Issue(p)
	if a != b {
		t.Fatalf("expected identical tokens, got %q and %q", a, b)
	}
}

func TestValidate_IgnoresExpiry(t *testing.T) {
	m := newManager(t, "secret")

	past := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 9,
		"email":  "old@demo.com",
		"iat":    past.Unix(),
		"exp":    past.Add(time.Hour).Unix(),
	})
	tok, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	got, err := m.Validate(tok)
	if err != nil {
		t.Fatalf("expected expired token to be accepted, got %v", err)
	}
	if got.UserID != 9 {
		t.Fatalf("unexpected user id %d", got.UserID)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := newManager(t, "one")
	validator := newManager(t, "two")

	tok, _ := issuer.Issue(domain.TokenPayload{UserID: 1, Email: "a@b.com"})
	if _, err := validator.Validate(tok); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidate_RejectsOtherAlgorithms(t *testing.T) {
	m := newManager(t, "secret")

	raw := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"userId": 1, "email": "a@b.com"})
	tok, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := m.Validate(tok); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512, got %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"userId": 1})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := m.Validate(unsigned); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg none, got %v", err)
	}
}

func TestValidate_Garbage(t *testing.T) {
	m := newManager(t, "secret")
	if _, err := m.Validate("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewManager_EmptySecret(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
