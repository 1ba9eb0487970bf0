package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"padelcygnus/internal/domain/chat"
)

// ChatStoreForOrchestrator defines the chat store interface needed by SendChatMessage.
type ChatStoreForOrchestrator interface {
	Append(ctx context.Context, m chat.Message) (chat.Message, error)
}

// ChatPublisher pushes stored messages to live subscribers.
type ChatPublisher interface {
	Publish(m chat.Message)
}

// ChatScheduler runs f once after d. time.AfterFunc satisfies it through AfterFuncScheduler.
type ChatScheduler func(d time.Duration, f func())

// AfterFuncScheduler schedules with time.AfterFunc.
func AfterFuncScheduler(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// SendChatMessageInput carries input for the chat orchestrator.
type SendChatMessageInput struct {
	ConversationID string
	Text           string
}

// SendChatMessageDeps holds dependencies for SendChatMessage.
type SendChatMessageDeps struct {
	ChatStore  ChatStoreForOrchestrator
	Publisher  ChatPublisher // optional: nil skips live push
	Schedule   ChatScheduler
	ReplyDelay time.Duration
	Now        func() time.Time
}

// SendChatMessageResult reports what was appended synchronously.
type SendChatMessageResult struct {
	Message chat.Message
	Ignored bool // true when the text was blank
}

// ExecuteSendChatMessage appends the visitor's message now and the canned bot
// reply after ReplyDelay. Blank input appends nothing.
// PRE: input.ConversationID is non-empty
// POST: User message stored immediately; bot reply stored once the scheduled func runs
// INVARIANT: the bot reply is always ordered after the message that triggered it
func ExecuteSendChatMessage(ctx context.Context, input SendChatMessageInput, deps SendChatMessageDeps) (SendChatMessageResult, error) {
	text, ok := chat.Normalize(input.Text)
	if !ok {
		return SendChatMessageResult{Ignored: true}, nil
	}

	msg := chat.UserMessage(input.ConversationID, text, deps.Now())
	if err := msg.Validate(); err != nil {
		return SendChatMessageResult{}, err
	}
	stored, err := deps.ChatStore.Append(ctx, msg)
	if err != nil {
		return SendChatMessageResult{}, err
	}
	publish(deps.Publisher, stored)
	slog.Info("chat_event", "event", "message_received", "conversation_id", input.ConversationID, "seq", stored.Seq)

	deps.Schedule(deps.ReplyDelay, func() {
		// The request context is gone by the time the reply fires.
		reply, err := deps.ChatStore.Append(context.Background(), chat.BotReply(input.ConversationID, deps.Now()))
		if err != nil {
			slog.Error("chat_event", "event", "reply_failed", "conversation_id", input.ConversationID, "error", err)
			return
		}
		publish(deps.Publisher, reply)
		slog.Info("chat_event", "event", "reply_sent", "conversation_id", input.ConversationID, "seq", reply.Seq)
	})

	return SendChatMessageResult{Message: stored}, nil
}

func publish(p ChatPublisher, m chat.Message) {
	if p != nil {
		p.Publish(m)
	}
}

// ChatStoreForPurge defines the chat store interface needed by PurgeChat.
type ChatStoreForPurge interface {
	IdleConversations(ctx context.Context, cutoff time.Time) ([]string, error)
	DeleteConversation(ctx context.Context, conversationID string) error
}

// ExecutePurgeChat deletes every transcript with no message since cutoff.
// POST: No conversation idle since cutoff remains; returns how many were deleted
func ExecutePurgeChat(ctx context.Context, cutoff time.Time, store ChatStoreForPurge) (int, error) {
	ids, err := store.IdleConversations(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list idle conversations: %w", err)
	}
	for i, id := range ids {
		if err := store.DeleteConversation(ctx, id); err != nil {
			return i, fmt.Errorf("delete conversation %s: %w", id, err)
		}
	}
	if len(ids) > 0 {
		slog.Info("chat_event", "event", "conversations_purged", "count", len(ids), "cutoff", cutoff)
	}
	return len(ids), nil
}
