package ports

import (
	"context"

	"github.com/salesdesk/sales-api/internal/core/domain"
)

// SignupInput carries the fields needed to create an account.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AccessToken is returned by login and signup.
type AccessToken struct {
	AccessToken string `json:"access_token"`
}

type AuthService interface {
	// ValidateCredentials returns nil, nil for an unknown email or a wrong password.
	ValidateCredentials(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, user *domain.User) (*AccessToken, error)
	Signup(ctx context.Context, in SignupInput) (*AccessToken, error)
	// Authenticate resolves a bearer token to a principal with fresh roles.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

type RoleService interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindByNames(ctx context.Context, names []string) ([]domain.Role, error)
}

type UserService interface {
	AssignRoles(ctx context.Context, email string, roleNames []string) (*domain.User, error)
	// CreateAdmin bootstraps an administrator outside the assign-roles pathway.
	CreateAdmin(ctx context.Context, in SignupInput) (*domain.User, error)
}
