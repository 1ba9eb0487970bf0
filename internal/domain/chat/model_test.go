package chat_test

import (
	"strings"
	"testing"
	"time"

	"padelcygnus/internal/domain/chat"
)

// TestNormalize covers whitespace handling.
func TestNormalize(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"hola", "hola", true},
		{"  ¿horarios?  ", "¿horarios?", true},
		{"", "", false},
		{"   ", "", false},
		{"\n\t", "", false},
	}
	for _, tt := range tests {
		got, ok := chat.Normalize(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

// TestMessage_Validate tests validation of Message.
func TestMessage_Validate(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		msg     chat.Message
		wantErr error
	}{
		{"user message", chat.UserMessage("c-1", "hola", now), nil},
		{"bot reply", chat.BotReply("c-1", now), nil},
		{"no conversation", chat.UserMessage("", "hola", now), chat.ErrEmptyConversation},
		{"empty text", chat.UserMessage("c-1", "", now), chat.ErrEmptyText},
		{"too long", chat.UserMessage("c-1", strings.Repeat("a", chat.MaxTextLength+1), now), chat.ErrTextTooLong},
		{"accents at the limit", chat.UserMessage("c-1", strings.Repeat("ñ", chat.MaxTextLength), now), nil},
		{"accents under the limit", chat.UserMessage("c-1", strings.Repeat("á", 1500), now), nil},
		{"accents over the limit", chat.UserMessage("c-1", strings.Repeat("ñ", chat.MaxTextLength+1), now), chat.ErrTextTooLong},
		{"unknown sender", chat.Message{ConversationID: "c-1", Text: "x", Sender: "staff"}, chat.ErrInvalidSender},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.msg.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestBotReply uses the canned text.
func TestBotReply(t *testing.T) {
	m := chat.BotReply("c-1", time.Now())
	if !m.IsBot() {
		t.Error("expected bot sender")
	}
	if m.Text != chat.CannedReply {
		t.Errorf("Text = %q", m.Text)
	}
}
