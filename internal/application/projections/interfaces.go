package projections

import (
	"context"

	bookingStore "padelcygnus/internal/adapters/storage/booking"
	"padelcygnus/internal/domain/booking"
	"padelcygnus/internal/domain/chat"
	"padelcygnus/internal/domain/member"
	"padelcygnus/internal/domain/notification"
	"padelcygnus/internal/domain/tournament"
)

// BookingStore interface for booking queries.
type BookingStore interface {
	List(ctx context.Context, workspaceID string, filter bookingStore.ListFilter) ([]booking.Booking, error)
	GetByID(ctx context.Context, workspaceID, id string) (booking.Booking, error)
}

// MemberStore interface for roster queries.
type MemberStore interface {
	List(ctx context.Context, workspaceID string) ([]member.Member, error)
	GetByID(ctx context.Context, workspaceID, id string) (member.Member, error)
}

// TournamentStore interface for tournament queries.
type TournamentStore interface {
	List(ctx context.Context, workspaceID string) ([]tournament.Tournament, error)
	GetByID(ctx context.Context, workspaceID, id string) (tournament.Tournament, error)
}

// NotificationStore interface for notification queries.
type NotificationStore interface {
	List(ctx context.Context, workspaceID string) ([]notification.Notification, error)
}

// ChatStore interface for transcript queries.
type ChatStore interface {
	ListByConversation(ctx context.Context, conversationID string, afterSeq int64) ([]chat.Message, error)
}
