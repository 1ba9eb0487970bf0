package workspace

import (
	"errors"
	"time"

	"padelcygnus/internal/domain/role"
)

// Domain errors
var (
	ErrEmptyID     = errors.New("workspace id cannot be empty")
	ErrInvalidKind = errors.New("workspace kind must be one of: admin, member")
)

// Workspace is the per-session copy of the mock club data.
// Its Kind picks the seed set: admins see every member's bookings,
// members see only their own.
type Workspace struct {
	ID        string
	Kind      role.Role
	CreatedAt time.Time
}

// Validate checks if the Workspace has valid data.
// PRE: Workspace struct is populated
// POST: Returns nil if valid, error otherwise
func (w *Workspace) Validate() error {
	if w.ID == "" {
		return ErrEmptyID
	}
	if !w.Kind.Valid() {
		return ErrInvalidKind
	}
	return nil
}
