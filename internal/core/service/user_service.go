package service

import (
	"context"
	"fmt"
	"time"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

// UserService manages role membership.
//
// AssignRoles is a read-modify-write without locking: two concurrent
// assignments for the same user resolve as last write wins.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleService
	hasher ports.PasswordHasher
	now    func() time.Time
}

func NewUserService(users ports.UserRepository, roles ports.RoleService, hasher ports.PasswordHasher) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, now: time.Now}
}

// AssignRoles replaces the role set of the user identified by email.
// The admin role can be neither granted nor revoked through this call.
func (s *UserService) AssignRoles(ctx context.Context, email string, roleNames []string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	resolved, err := s.roles.FindByNames(ctx, roleNames)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, domain.ErrRolesNotFound
	}

	if user.HasRole(domain.RoleAdmin) != containsRole(resolved, domain.RoleAdmin) {
		return nil, domain.ErrAdminRoleImmutable
	}

	user.Roles = resolved
	user.UpdatedAt = s.now().UTC()

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	saved.PasswordHash = ""
	return saved, nil
}

// CreateAdmin inserts a user holding only the admin role.
func (s *UserService) CreateAdmin(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	admin, err := s.roles.FindByName(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, fmt.Errorf("%w: admin role is not seeded", domain.ErrRolesNotFound)
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
		Roles:        []domain.Role{*admin},
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	created.PasswordHash = ""
	return created, nil
}

func containsRole(roles []domain.Role, name string) bool {
	for _, r := range roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
