package role

import "errors"

// Role is the closed set of session roles.
type Role string

// Roles
const (
	Admin  Role = "admin"
	Member Role = "member"
)

// ErrInvalidRole is returned when a string does not name a known role.
var ErrInvalidRole = errors.New("role must be one of: admin, member")

// All lists every valid role.
var All = []Role{Admin, Member}

// Parse converts a raw string into a Role.
// PRE: none
// POST: Returns the matching Role or ErrInvalidRole
func Parse(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Valid reports whether r is a member of the closed set.
func (r Role) Valid() bool {
	return r == Admin || r == Member
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// DashboardPath returns the landing route for a session with this role.
// INVARIANT: every valid role maps to exactly one dashboard
func (r Role) DashboardPath() string {
	if r == Admin {
		return "/admin/dashboard"
	}
	return "/member/dashboard"
}

// LoginPath returns the login screen that guards this role's routes.
func (r Role) LoginPath() string {
	if r == Admin {
		return "/admin/login"
	}
	return "/member/login"
}
