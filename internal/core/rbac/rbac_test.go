package rbac

import (
	"errors"
	"testing"

	"github.com/salesdesk/sales-api/internal/core/domain"
)

func principal(roles ...string) *domain.Principal {
	return &domain.Principal{ID: 1, Email: "p@demo.com", Roles: roles}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		p        *domain.Principal
		required []string
		want     error
	}{
		{"admin bypasses customer gate", principal("admin"), []string{"customer"}, nil},
		{"admin bypasses multi-role gate", principal("admin"), []string{"agent", "customer"}, nil},
		{"customer denied on agent gate", principal("customer"), []string{"agent"}, domain.ErrForbidden},
		{"no roles and no requirement", principal(), nil, nil},
		{"no roles and empty requirement", principal(), []string{}, nil},
		{"anonymous and no requirement", nil, nil, nil},
		{"anonymous on gated route", nil, []string{"agent"}, domain.ErrUnauthenticated},
		{"any intersecting role", principal("guest", "agent"), []string{"customer", "agent"}, nil},
		{"guest denied", principal("guest"), []string{"customer", "agent"}, domain.ErrForbidden},
		{"no roles denied", principal(), []string{"guest"}, domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.p, tt.required)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("expected allow, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
