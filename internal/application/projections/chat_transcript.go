package projections

import (
	"context"

	"padelcygnus/internal/domain/chat"
)

// QueryChatTranscript returns a conversation's messages with Seq > afterSeq.
// PRE: conversationID is non-empty
// POST: Messages are ordered by Seq; an unknown conversation yields an empty slice
func QueryChatTranscript(ctx context.Context, conversationID string, afterSeq int64, store ChatStore) ([]chat.Message, error) {
	msgs, err := store.ListByConversation(ctx, conversationID, afterSeq)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []chat.Message{}
	}
	return msgs, nil
}
