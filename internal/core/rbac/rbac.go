// Package rbac decides whether a principal may reach a role-gated route.
package rbac

import (
	"github.com/salesdesk/sales-api/internal/core/domain"
)

// Authorize allows the request when required is empty, when the principal
// holds the admin role, or when it holds any of the required roles.
// A nil principal against a non-empty requirement is unauthenticated.
func Authorize(p *domain.Principal, required []string) error {
	if len(required) == 0 {
		return nil
	}
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if p.HasRole(domain.RoleAdmin) {
		return nil
	}
	for _, r := range required {
		if p.HasRole(r) {
			return nil
		}
	}
	return domain.ErrForbidden
}
