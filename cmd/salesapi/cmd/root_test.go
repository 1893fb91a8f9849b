package cmd

import (
	"strings"
	"testing"
)

func TestRootCommandTree(t *testing.T) {
	want := []string{"serve", "migrate up", "migrate down", "migrate status", "admin create"}
	for _, path := range want {
		c, _, err := rootCmd.Find(strings.Fields(path))
		if err != nil {
			t.Fatalf("find %q: %v", path, err)
		}
		if c.Name() != strings.Fields(path)[len(strings.Fields(path))-1] {
			t.Fatalf("expected %q, resolved %q", path, c.CommandPath())
		}
		if c.RunE == nil {
			t.Fatalf("%q has no RunE", path)
		}
	}
}

func TestAdminCreate_FlagValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  string
	}{
		{"missing email", "", "pass", "--email"},
		{"missing password", "root@demo.com", "", "--password"},
		{"malformed email", "not-an-email", "pass", "invalid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adminEmail, adminPassword = tt.email, tt.password
			t.Cleanup(func() { adminEmail, adminPassword = "", "" })

			err := adminCreateCmd.RunE(adminCreateCmd, nil)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAdminCreate_Flags(t *testing.T) {
	for _, name := range []string{"email", "password", "first-name", "last-name"} {
		if adminCreateCmd.Flags().Lookup(name) == nil {
			t.Fatalf("missing --%s flag", name)
		}
	}
}
