package service

import (
	"context"
	"testing"
)

func TestRoleService_FindByNames_DropsUnknownAndDuplicates(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo())

	roles, err := svc.FindByNames(context.Background(), []string{"agent", "nope", "agent", "guest"})
	if err != nil {
		t.Fatalf("FindByNames: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %+v", roles)
	}
}

func TestRoleService_FindByNames_NoneKnown(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo())

	roles, err := svc.FindByNames(context.Background(), []string{"root", "superuser"})
	if err != nil {
		t.Fatalf("unknown names must not error: %v", err)
	}
	if len(roles) != 0 {
		t.Fatalf("expected empty result, got %+v", roles)
	}
}

func TestRoleService_FindByName(t *testing.T) {
	svc := NewRoleService(newStubRoleRepo())

	r, err := svc.FindByName(context.Background(), "customer")
	if err != nil || r == nil || r.Name != "customer" {
		t.Fatalf("expected customer role, got %+v, %v", r, err)
	}
	r, err = svc.FindByName(context.Background(), "missing")
	if err != nil || r != nil {
		t.Fatalf("expected nil, nil for missing role, got %+v, %v", r, err)
	}
}
