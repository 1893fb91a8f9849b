package service

import (
	"context"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

// RoleService resolves role names against the seeded role set.
type RoleService struct {
	repo ports.RoleRepository
}

func NewRoleService(repo ports.RoleRepository) *RoleService {
	return &RoleService{repo: repo}
}

// FindByName returns nil, nil for an unknown name.
func (s *RoleService) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	return s.repo.FindByName(ctx, name)
}

// FindByNames returns the roles that exist, dropping unknown and repeated
// names. An empty result is not an error here.
func (s *RoleService) FindByNames(ctx context.Context, names []string) ([]domain.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(names))
	unique := make([]string, 0, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}

	return s.repo.FindByNames(ctx, unique)
}
