package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
	"github.com/salesdesk/sales-api/internal/core/token"
	"github.com/salesdesk/sales-api/internal/infrastructure/security"
)

// 30 runes, 90 bytes.
var oversizedPassword = strings.Repeat("€", 30)

func TestAuthService_Signup_PasswordOverBcryptLimit(t *testing.T) {
	tm, err := token.NewManager("secret")
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	users := newStubUserRepo()
	svc := NewAuthService(users, NewRoleService(newStubRoleRepo()), security.NewBcryptHasher(bcrypt.MinCost, nil), tm, tm)

	_, err = svc.Signup(context.Background(), ports.SignupInput{Email: "euro@demo.com", Password: oversizedPassword})
	if !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
	if domain.KindOf(err) != domain.KindBadRequest {
		t.Fatalf("expected bad_request, got %s", domain.KindOf(err))
	}
	if _, ok := users.byEmail["euro@demo.com"]; ok {
		t.Fatalf("user must not be stored")
	}
}

func TestUserService_CreateAdmin_PasswordOverBcryptLimit(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), NewRoleService(newStubRoleRepo()), security.NewBcryptHasher(bcrypt.MinCost, nil))

	_, err := svc.CreateAdmin(context.Background(), ports.SignupInput{Email: "root@demo.com", Password: oversizedPassword})
	if !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
	if domain.KindOf(err) != domain.KindBadRequest {
		t.Fatalf("expected bad_request, got %s", domain.KindOf(err))
	}
}
