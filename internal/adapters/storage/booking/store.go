package booking

import (
	"context"

	domain "padelcygnus/internal/domain/booking"
)

// Store persists the bookings of one workspace.
// List returns bookings in insertion order; Save on an existing id keeps its position.
type Store interface {
	GetByID(ctx context.Context, workspaceID, id string) (domain.Booking, error)
	Save(ctx context.Context, workspaceID string, value domain.Booking) error
	Delete(ctx context.Context, workspaceID, id string) error
	List(ctx context.Context, workspaceID string, filter ListFilter) ([]domain.Booking, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Status string
	Limit  int
}
