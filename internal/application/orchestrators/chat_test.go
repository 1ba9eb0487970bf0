package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"padelcygnus/internal/domain/chat"
)

func newChatDeps(store *mockChatStore, pub *recordingPublisher, sched *manualScheduler) SendChatMessageDeps {
	deps := SendChatMessageDeps{
		ChatStore:  store,
		Schedule:   sched.schedule,
		ReplyDelay: chat.DefaultReplyDelay,
		Now:        fixedNow,
	}
	if pub != nil {
		deps.Publisher = pub
	}
	return deps
}

// TestExecuteSendChatMessage verifies the visitor entry lands now and the reply after the delay.
func TestExecuteSendChatMessage(t *testing.T) {
	store := &mockChatStore{}
	pub := &recordingPublisher{}
	sched := &manualScheduler{}

	res, err := ExecuteSendChatMessage(context.Background(), SendChatMessageInput{ConversationID: "c1", Text: "  Hola  "}, newChatDeps(store, pub, sched))
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if res.Ignored || res.Message.Text != "Hola" || res.Message.Sender != chat.SenderUser {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(store.messages) != 1 {
		t.Fatalf("messages before reply = %d, want 1", len(store.messages))
	}
	if len(sched.delays) != 1 || sched.delays[0] != time.Second {
		t.Fatalf("scheduled delays = %v, want [1s]", sched.delays)
	}

	sched.run()

	if len(store.messages) != 2 {
		t.Fatalf("messages after reply = %d, want 2", len(store.messages))
	}
	reply := store.messages[1]
	if reply.Sender != chat.SenderBot || reply.Text != chat.CannedReply || reply.ConversationID != "c1" {
		t.Errorf("unexpected reply %+v", reply)
	}
	if len(pub.published) != 2 || pub.published[0].Seq >= pub.published[1].Seq {
		t.Errorf("published = %+v", pub.published)
	}
}

// TestExecuteSendChatMessage_Blank verifies whitespace-only input is ignored entirely.
func TestExecuteSendChatMessage_Blank(t *testing.T) {
	store := &mockChatStore{}
	sched := &manualScheduler{}
	res, err := ExecuteSendChatMessage(context.Background(), SendChatMessageInput{ConversationID: "c1", Text: " \t "}, newChatDeps(store, &recordingPublisher{}, sched))
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if !res.Ignored {
		t.Error("expected Ignored")
	}
	if len(store.messages) != 0 || len(sched.funcs) != 0 {
		t.Error("blank input must not store or schedule anything")
	}
}

// TestExecuteSendChatMessage_Interleaved verifies two quick messages each get one reply.
func TestExecuteSendChatMessage_Interleaved(t *testing.T) {
	store := &mockChatStore{}
	sched := &manualScheduler{}
	deps := newChatDeps(store, nil, sched)

	for _, text := range []string{"uno", "dos"} {
		if _, err := ExecuteSendChatMessage(context.Background(), SendChatMessageInput{ConversationID: "c", Text: text}, deps); err != nil {
			t.Fatalf("send %q: %v", text, err)
		}
	}
	sched.run()

	var senders []string
	for _, m := range store.messages {
		senders = append(senders, m.Sender)
	}
	want := []string{chat.SenderUser, chat.SenderUser, chat.SenderBot, chat.SenderBot}
	if len(senders) != len(want) {
		t.Fatalf("senders = %v, want %v", senders, want)
	}
	for i := range want {
		if senders[i] != want[i] {
			t.Fatalf("senders = %v, want %v", senders, want)
		}
	}
}

// TestExecuteSendChatMessage_StoreError verifies nothing is scheduled when the append fails.
func TestExecuteSendChatMessage_StoreError(t *testing.T) {
	boom := errors.New("disk full")
	store := &mockChatStore{failNext: boom}
	sched := &manualScheduler{}
	_, err := ExecuteSendChatMessage(context.Background(), SendChatMessageInput{ConversationID: "c", Text: "hola"}, newChatDeps(store, &recordingPublisher{}, sched))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if len(sched.funcs) != 0 {
		t.Error("reply should not be scheduled")
	}
}

// TestExecuteSendChatMessage_TooLong verifies the length cap.
func TestExecuteSendChatMessage_TooLong(t *testing.T) {
	long := make([]byte, chat.MaxTextLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := ExecuteSendChatMessage(context.Background(), SendChatMessageInput{ConversationID: "c", Text: string(long)},
		newChatDeps(&mockChatStore{}, nil, &manualScheduler{}))
	if !errors.Is(err, chat.ErrTextTooLong) {
		t.Fatalf("err = %v, want ErrTextTooLong", err)
	}
}

// TestExecutePurgeChat verifies idle transcripts go and active ones stay.
func TestExecutePurgeChat(t *testing.T) {
	ctx := context.Background()
	store := &mockChatStore{}
	store.Append(ctx, chat.UserMessage("old", "hola", fixedTime.Add(-48*time.Hour)))
	store.Append(ctx, chat.BotReply("old", fixedTime.Add(-48*time.Hour+time.Second)))
	store.Append(ctx, chat.UserMessage("recent", "hola", fixedTime.Add(-time.Hour)))

	n, err := ExecutePurgeChat(ctx, fixedTime.Add(-24*time.Hour), store)
	if err != nil {
		t.Fatalf("ExecutePurgeChat: %v", err)
	}
	if n != 1 {
		t.Errorf("purged = %d, want 1", n)
	}
	if len(store.messages) != 1 || store.messages[0].ConversationID != "recent" {
		t.Errorf("remaining = %+v", store.messages)
	}

	n, err = ExecutePurgeChat(ctx, fixedTime, store)
	if err != nil || n != 1 || len(store.messages) != 0 {
		t.Errorf("purge all: n = %d, err = %v, remaining = %d", n, err, len(store.messages))
	}
}

// TestExecutePurgeChat_DeleteFails verifies the error names the conversation.
func TestExecutePurgeChat_DeleteFails(t *testing.T) {
	ctx := context.Background()
	store := &mockChatStore{}
	store.Append(ctx, chat.UserMessage("old", "hola", fixedTime.Add(-48*time.Hour)))
	store.failNext = errors.New("disk full")

	if _, err := ExecutePurgeChat(ctx, fixedTime, store); err == nil {
		t.Fatal("expected error")
	}
}
