package web

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"padelcygnus/internal/adapters/http/middleware"
	"padelcygnus/internal/adapters/http/perf"
	"padelcygnus/internal/application/orchestrators"
	"padelcygnus/internal/application/projections"
	"padelcygnus/internal/domain/chat"
)

// ChatCookieName holds the visitor's conversation id.
const ChatCookieName = "padel_chat"

const (
	chatPingInterval = 30 * time.Second
	chatReadTimeout  = 60 * time.Second
	chatWriteTimeout = 10 * time.Second
)

// upgrader keeps gorilla's default same-origin check.
var upgrader = websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024}

type chatRequest struct {
	Text string `json:"text"`
}

// conversationFromCookie returns the visitor's conversation id, if any.
func conversationFromCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(ChatCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// chatCookie lives as long as an idle transcript is kept.
func chatCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     ChatCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(appConfig.ChatTTL.Seconds()),
		HttpOnly: true,
		Secure:   middleware.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// ensureConversation returns the cookie's conversation id or issues a new one.
// The cookie is re-sent so its lifetime restarts with each message.
func ensureConversation(w http.ResponseWriter, r *http.Request) string {
	id, ok := conversationFromCookie(r)
	if !ok {
		id = generateID()
	}
	http.SetCookie(w, chatCookie(id))
	return id
}

func chatDeps() orchestrators.SendChatMessageDeps {
	return orchestrators.SendChatMessageDeps{
		ChatStore:  stores.ChatStore,
		Publisher:  chatHub,
		Schedule:   scheduleChatReply,
		ReplyDelay: appConfig.ChatReplyDelay,
		Now:        timeNow,
	}
}

// handleChatTranscript serves GET /chat/messages?after=N as JSON.
func handleChatTranscript(w http.ResponseWriter, r *http.Request) {
	convID, ok := conversationFromCookie(r)
	if !ok {
		writeJSON(w, http.StatusOK, []chat.Message{})
		return
	}
	var after int64
	if raw := r.URL.Query().Get("after"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			http.Error(w, "after must be a non-negative integer", http.StatusBadRequest)
			return
		}
		after = n
	}
	msgs, err := projections.QueryChatTranscript(r.Context(), convID, after, stores.ChatStore)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

// handleChatSend handles POST /chat/messages with a JSON body or the widget form.
func handleChatSend(w http.ResponseWriter, r *http.Request) {
	isJSON := strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
	var req chatRequest
	if isJSON {
		if err := strictDecode(r, &req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		req.Text = r.FormValue("text")
	}

	convID := ensureConversation(w, r)
	result, err := orchestrators.ExecuteSendChatMessage(r.Context(), orchestrators.SendChatMessageInput{
		ConversationID: convID,
		Text:           req.Text,
	}, chatDeps())
	if errors.Is(err, chat.ErrTextTooLong) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	if !isJSON && !wantsJSON(r) {
		http.Redirect(w, r, "/?chat=open#chat", http.StatusSeeOther)
		return
	}
	if result.Ignored {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusCreated, result.Message)
}

// handleChatSocket serves GET /chat/ws. The socket first replays the
// transcript, then pushes every new message of the conversation. Hub updates
// only wake the loop; messages are always read back from the store. Text
// frames from the client are treated as outgoing chat messages.
func handleChatSocket(w http.ResponseWriter, r *http.Request) {
	convID, ok := conversationFromCookie(r)
	header := http.Header{}
	if !ok {
		convID = generateID()
		header.Add("Set-Cookie", chatCookie(convID).String())
	}

	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		// Upgrade has already written the HTTP error.
		slog.Warn("chat_event", "event", "upgrade_failed", "error", err)
		return
	}
	defer conn.Close()

	updates, cancel := chatHub.Subscribe(convID)
	defer cancel()

	slog.Debug("chat_event", "event", "socket_opened", "conversation_id", convID, "subscribers", chatHub.Subscribers(convID))

	var lastSeq int64
	if lastSeq, err = catchUpChat(r.Context(), conn, convID, lastSeq); err != nil {
		return
	}

	done := make(chan struct{})
	go readChatSocket(conn, convID, done)

	ticker := time.NewTicker(chatPingInterval)
	defer ticker.Stop()
	for {
		select {
		case m, open := <-updates:
			if !open {
				return
			}
			// Messages stored between Subscribe and the backlog read arrive twice.
			if m.Seq <= lastSeq {
				continue
			}
			// Re-reading the transcript also delivers any push the hub dropped.
			if lastSeq, err = catchUpChat(r.Context(), conn, convID, lastSeq); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(chatWriteTimeout)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// catchUpChat pushes every stored message after lastSeq and returns the new high-water mark.
func catchUpChat(ctx context.Context, conn *websocket.Conn, convID string, lastSeq int64) (int64, error) {
	msgs, err := projections.QueryChatTranscript(ctx, convID, lastSeq, stores.ChatStore)
	if err != nil {
		slog.Error("chat_event", "event", "transcript_read_failed", "conversation_id", convID, "error", err)
		return lastSeq, err
	}
	for _, m := range msgs {
		if err := pushChatMessage(conn, m); err != nil {
			return lastSeq, err
		}
		lastSeq = m.Seq
	}
	return lastSeq, nil
}

// readChatSocket appends each client text frame until the socket closes.
func readChatSocket(conn *websocket.Conn, convID string, done chan<- struct{}) {
	defer close(done)
	_ = conn.SetReadDeadline(time.Now().Add(chatReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(chatReadTimeout))
	})
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(chatReadTimeout))
		if kind != websocket.TextMessage {
			continue
		}
		var req chatRequest
		if err := json.Unmarshal(data, &req); err != nil {
			req.Text = string(data)
		}
		_, err = orchestrators.ExecuteSendChatMessage(context.Background(), orchestrators.SendChatMessageInput{
			ConversationID: convID,
			Text:           req.Text,
		}, chatDeps())
		if err != nil {
			slog.Warn("chat_event", "event", "socket_message_rejected", "conversation_id", convID, "error", err)
		}
	}
}

// pushChatMessage writes m as one JSON text frame and records its latency.
func pushChatMessage(conn *websocket.Conn, m chat.Message) error {
	start := time.Now()
	_ = conn.SetWriteDeadline(start.Add(chatWriteTimeout))
	err := conn.WriteJSON(m)
	if perfCollector != nil {
		perfCollector.Record(perf.Entry{
			Kind:       perf.KindPush,
			Label:      "push " + m.Sender,
			DurationMs: float64(time.Since(start).Microseconds()) / 1000,
			Timestamp:  start,
		})
	}
	return err
}
