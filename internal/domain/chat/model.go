package chat

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Senders
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// CannedReply is the only thing the bot ever says.
const CannedReply = "¡Gracias por tu mensaje! Un representante te contactará pronto."

// DefaultReplyDelay is how long the bot waits before answering.
const DefaultReplyDelay = time.Second

// MaxTextLength caps a single chat entry, in characters.
const MaxTextLength = 2000

// Domain errors
var (
	ErrEmptyText         = errors.New("chat message cannot be empty")
	ErrTextTooLong       = errors.New("chat message cannot exceed 2000 characters")
	ErrInvalidSender     = errors.New("chat sender must be one of: user, bot")
	ErrEmptyConversation = errors.New("chat conversation id cannot be empty")
)

// Message is one entry in a visitor's chat transcript.
// Seq is assigned by the store and orders the transcript.
type Message struct {
	Seq            int64     `json:"seq"`
	ConversationID string    `json:"-"`
	Text           string    `json:"text"`
	Sender         string    `json:"sender"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Validate checks if the Message has valid data.
// PRE: Message struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Message) Validate() error {
	if m.ConversationID == "" {
		return ErrEmptyConversation
	}
	if m.Text == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(m.Text) > MaxTextLength {
		return ErrTextTooLong
	}
	if m.Sender != SenderUser && m.Sender != SenderBot {
		return ErrInvalidSender
	}
	return nil
}

// IsBot reports whether the message came from the scripted responder.
func (m Message) IsBot() bool {
	return m.Sender == SenderBot
}

// Normalize trims surrounding whitespace. The second result is false when
// nothing is left to send.
func Normalize(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	return trimmed, trimmed != ""
}

// UserMessage builds a visitor-authored entry.
func UserMessage(conversationID, text string, now time.Time) Message {
	return Message{ConversationID: conversationID, Text: text, Sender: SenderUser, CreatedAt: now}
}

// BotReply builds the scripted response.
func BotReply(conversationID string, now time.Time) Message {
	return Message{ConversationID: conversationID, Text: CannedReply, Sender: SenderBot, CreatedAt: now}
}
