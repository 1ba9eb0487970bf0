package projections

import (
	"context"
	"database/sql"
	"errors"

	"padelcygnus/internal/domain/booking"
	"padelcygnus/internal/domain/member"
	"padelcygnus/internal/domain/tournament"
)

// ErrNotFound is returned by the detail queries when the id is not in the workspace.
var ErrNotFound = errors.New("not found")

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// QueryBookingDetail returns one booking for the detail dialog.
// PRE: workspaceID names a seeded workspace
// POST: Returns ErrNotFound for an unknown id
func QueryBookingDetail(ctx context.Context, workspaceID, id string, store BookingStore) (booking.Booking, error) {
	b, err := store.GetByID(ctx, workspaceID, id)
	if err != nil {
		return booking.Booking{}, notFound(err)
	}
	return b, nil
}

// QueryMemberDetail returns one roster entry.
func QueryMemberDetail(ctx context.Context, workspaceID, id string, store MemberStore) (member.Member, error) {
	m, err := store.GetByID(ctx, workspaceID, id)
	if err != nil {
		return member.Member{}, notFound(err)
	}
	return m, nil
}

// QueryTournamentDetail returns one tournament.
func QueryTournamentDetail(ctx context.Context, workspaceID, id string, store TournamentStore) (tournament.Tournament, error) {
	t, err := store.GetByID(ctx, workspaceID, id)
	if err != nil {
		return tournament.Tournament{}, notFound(err)
	}
	return t, nil
}
