package ports

import (
	"context"

	"github.com/salesdesk/sales-api/internal/core/domain"
)

// UserRepository persists users together with their role memberships.
// Lookups return domain.ErrUserNotFound when no live user matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create inserts the user and its roles. A duplicate email yields
	// domain.ErrDuplicateEmail.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Save replaces the stored role set of user with user.Roles.
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RoleRepository reads the seeded roles.
type RoleRepository interface {
	// FindByName returns nil, nil when the role does not exist.
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	// FindByNames returns only the roles that exist; unknown names are dropped.
	FindByNames(ctx context.Context, names []string) ([]domain.Role, error)
}

// PasswordHasher is a one-way hash with constant-time comparison.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	// Compare reports whether password matches hash. A mismatch is not an error.
	Compare(ctx context.Context, hash, password string) (bool, error)
}

// TokenIssuer mints signed bearer tokens.
type TokenIssuer interface {
	Issue(payload domain.TokenPayload) (string, error)
}

// TokenValidator checks a token's signature and returns its payload.
type TokenValidator interface {
	Validate(token string) (domain.TokenPayload, error)
}
