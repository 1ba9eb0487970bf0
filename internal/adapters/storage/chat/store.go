package chat

import (
	"context"
	"time"

	domain "padelcygnus/internal/domain/chat"
)

// Store persists chat transcripts.
type Store interface {
	// Append stores m and returns it with its assigned sequence number.
	Append(ctx context.Context, m domain.Message) (domain.Message, error)
	ListByConversation(ctx context.Context, conversationID string, afterSeq int64) ([]domain.Message, error)
	DeleteConversation(ctx context.Context, conversationID string) error
	// IdleConversations lists conversations with no message since cutoff.
	IdleConversations(ctx context.Context, cutoff time.Time) ([]string, error)
}
