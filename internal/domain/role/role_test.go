package role_test

import (
	"errors"
	"testing"

	"padelcygnus/internal/domain/role"
)

// TestParse covers the closed role set.
func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    role.Role
		wantErr bool
	}{
		{"admin", role.Admin, false},
		{"member", role.Member, false},
		{"Admin", "", true},
		{"coach", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := role.Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, role.ErrInvalidRole) {
				t.Errorf("error = %v, want ErrInvalidRole", err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestRole_Paths verifies each role routes to its own dashboard and login.
func TestRole_Paths(t *testing.T) {
	if got := role.Admin.DashboardPath(); got != "/admin/dashboard" {
		t.Errorf("admin dashboard = %q", got)
	}
	if got := role.Member.DashboardPath(); got != "/member/dashboard" {
		t.Errorf("member dashboard = %q", got)
	}
	if got := role.Admin.LoginPath(); got != "/admin/login" {
		t.Errorf("admin login = %q", got)
	}
	if got := role.Member.LoginPath(); got != "/member/login" {
		t.Errorf("member login = %q", got)
	}
}
