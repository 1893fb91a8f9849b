package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

// AuthService implements credential validation, token issuance and signup.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleService
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
	tokens ports.TokenValidator
	now    func() time.Time
}

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleService,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	tokens ports.TokenValidator,
) *AuthService {
	return &AuthService{
		users:  users,
		roles:  roles,
		hasher: hasher,
		issuer: issuer,
		tokens: tokens,
		now:    time.Now,
	}
}

func (s *AuthService) ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	ok, err := s.hasher.Compare(ctx, user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	out := *user
	out.PasswordHash = ""
	return &out, nil
}

// Login mints a token for a user whose credentials were already validated.
func (s *AuthService) Login(_ context.Context, user *domain.User) (*ports.AccessToken, error) {
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AccessToken, error) {
	guest, err := s.roles.FindByName(ctx, domain.RoleGuest)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, domain.ErrGuestRoleMissing
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Roles:        []domain.Role{*guest},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	return s.issue(created)
}

// Authenticate validates the token and reloads the user so the principal
// carries the roles held right now. Bad tokens and vanished users are
// reported as unauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (*domain.Principal, error) {
	payload, err := s.tokens.Validate(raw)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return domain.NewPrincipal(user), nil
}

func (s *AuthService) issue(user *domain.User) (*ports.AccessToken, error) {
	tok, err := s.issuer.Issue(domain.TokenPayload{UserID: user.ID, Email: user.Email})
	if err != nil {
		return nil, err
	}
	return &ports.AccessToken{AccessToken: tok}, nil
}
