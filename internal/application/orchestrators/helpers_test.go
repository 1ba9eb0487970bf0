package orchestrators

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"padelcygnus/internal/domain/booking"
	"padelcygnus/internal/domain/chat"
	"padelcygnus/internal/domain/member"
	"padelcygnus/internal/domain/notification"
	"padelcygnus/internal/domain/tournament"
	"padelcygnus/internal/domain/workspace"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

// sequentialIDs returns a generator yielding "new-1", "new-2", ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}
}

// ordered keeps per-workspace records in insertion order, like the SQLite stores.
type ordered[T any] struct {
	ids  map[string][]string
	vals map[string]map[string]T
}

func newOrdered[T any]() *ordered[T] {
	return &ordered[T]{ids: map[string][]string{}, vals: map[string]map[string]T{}}
}

func (o *ordered[T]) get(ws, id string) (T, error) {
	v, ok := o.vals[ws][id]
	if !ok {
		var zero T
		return zero, sql.ErrNoRows
	}
	return v, nil
}

func (o *ordered[T]) put(ws, id string, v T) {
	if o.vals[ws] == nil {
		o.vals[ws] = map[string]T{}
	}
	if _, ok := o.vals[ws][id]; !ok {
		o.ids[ws] = append(o.ids[ws], id)
	}
	o.vals[ws][id] = v
}

func (o *ordered[T]) del(ws, id string) {
	if _, ok := o.vals[ws][id]; !ok {
		return
	}
	delete(o.vals[ws], id)
	ids := o.ids[ws]
	for i, v := range ids {
		if v == id {
			o.ids[ws] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
}

func (o *ordered[T]) list(ws string) []T {
	var out []T
	for _, id := range o.ids[ws] {
		out = append(out, o.vals[ws][id])
	}
	return out
}

func (o *ordered[T]) drop(ws string) {
	delete(o.ids, ws)
	delete(o.vals, ws)
}

// --- Mock stores ---

type mockBookingStore struct{ *ordered[booking.Booking] }

func newMockBookingStore() *mockBookingStore {
	return &mockBookingStore{newOrdered[booking.Booking]()}
}

func (m *mockBookingStore) GetByID(_ context.Context, ws, id string) (booking.Booking, error) {
	return m.get(ws, id)
}

func (m *mockBookingStore) Save(_ context.Context, ws string, b booking.Booking) error {
	m.put(ws, b.ID, b)
	return nil
}

func (m *mockBookingStore) Delete(_ context.Context, ws, id string) error {
	m.del(ws, id)
	return nil
}

type mockMemberStore struct{ *ordered[member.Member] }

func newMockMemberStore() *mockMemberStore {
	return &mockMemberStore{newOrdered[member.Member]()}
}

func (m *mockMemberStore) Save(_ context.Context, ws string, v member.Member) error {
	m.put(ws, v.ID, v)
	return nil
}

func (m *mockMemberStore) Delete(_ context.Context, ws, id string) error {
	m.del(ws, id)
	return nil
}

type mockTournamentStore struct {
	*ordered[tournament.Tournament]
}

func newMockTournamentStore() *mockTournamentStore {
	return &mockTournamentStore{newOrdered[tournament.Tournament]()}
}

func (m *mockTournamentStore) GetByID(_ context.Context, ws, id string) (tournament.Tournament, error) {
	return m.get(ws, id)
}

func (m *mockTournamentStore) Save(_ context.Context, ws string, t tournament.Tournament) error {
	m.put(ws, t.ID, t)
	return nil
}

func (m *mockTournamentStore) Delete(_ context.Context, ws, id string) error {
	m.del(ws, id)
	return nil
}

type mockNotificationStore struct {
	*ordered[notification.Notification]
}

func newMockNotificationStore() *mockNotificationStore {
	return &mockNotificationStore{newOrdered[notification.Notification]()}
}

func (m *mockNotificationStore) Save(_ context.Context, ws string, n notification.Notification) error {
	m.put(ws, n.ID, n)
	return nil
}

func (m *mockNotificationStore) Delete(_ context.Context, ws, id string) error {
	m.del(ws, id)
	return nil
}

// mockWorkspaceStore cascades deletes into the collection mocks it knows about.
type mockWorkspaceStore struct {
	workspaces map[string]workspace.Workspace
	cascade    []interface{ drop(string) }
}

func (m *mockWorkspaceStore) Save(_ context.Context, ws workspace.Workspace) error {
	m.workspaces[ws.ID] = ws
	return nil
}

func (m *mockWorkspaceStore) Delete(_ context.Context, id string) error {
	delete(m.workspaces, id)
	for _, c := range m.cascade {
		c.drop(id)
	}
	return nil
}

func (m *mockWorkspaceStore) DeleteAll(ctx context.Context) (int, error) {
	n := len(m.workspaces)
	for id := range m.workspaces {
		_ = m.Delete(ctx, id)
	}
	return n, nil
}

type seedFixture struct {
	workspaces    *mockWorkspaceStore
	bookings      *mockBookingStore
	members       *mockMemberStore
	tournaments   *mockTournamentStore
	notifications *mockNotificationStore
	deps          SeedWorkspaceDeps
}

func newSeedFixture() *seedFixture {
	f := &seedFixture{
		bookings:      newMockBookingStore(),
		members:       newMockMemberStore(),
		tournaments:   newMockTournamentStore(),
		notifications: newMockNotificationStore(),
	}
	f.workspaces = &mockWorkspaceStore{
		workspaces: map[string]workspace.Workspace{},
		cascade:    []interface{ drop(string) }{f.bookings, f.members, f.tournaments, f.notifications},
	}
	f.deps = SeedWorkspaceDeps{
		WorkspaceStore:    f.workspaces,
		BookingStore:      f.bookings,
		MemberStore:       f.members,
		TournamentStore:   f.tournaments,
		NotificationStore: f.notifications,
		GenerateID:        sequentialIDs(),
		Now:               fixedNow,
	}
	return f
}

type mockChatStore struct {
	mu       sync.Mutex
	messages []chat.Message
	failNext error
}

func (m *mockChatStore) Append(_ context.Context, msg chat.Message) (chat.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return chat.Message{}, err
	}
	msg.Seq = int64(len(m.messages) + 1)
	m.messages = append(m.messages, msg)
	return msg, nil
}

func (m *mockChatStore) IdleConversations(_ context.Context, cutoff time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	latest := map[string]time.Time{}
	var order []string
	for _, msg := range m.messages {
		if _, seen := latest[msg.ConversationID]; !seen {
			order = append(order, msg.ConversationID)
		}
		if msg.CreatedAt.After(latest[msg.ConversationID]) {
			latest[msg.ConversationID] = msg.CreatedAt
		}
	}
	var ids []string
	for _, id := range order {
		if latest[id].Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *mockChatStore) DeleteConversation(_ context.Context, conversationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	kept := m.messages[:0]
	for _, msg := range m.messages {
		if msg.ConversationID != conversationID {
			kept = append(kept, msg)
		}
	}
	m.messages = kept
	return nil
}

type recordingPublisher struct {
	mu        sync.Mutex
	published []chat.Message
}

func (p *recordingPublisher) Publish(m chat.Message) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, m)
}

// manualScheduler queues callbacks until run is called.
type manualScheduler struct {
	delays []time.Duration
	funcs  []func()
}

func (s *manualScheduler) schedule(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.funcs = append(s.funcs, f)
}

func (s *manualScheduler) run() {
	funcs := s.funcs
	s.funcs = nil
	for _, f := range funcs {
		f()
	}
}
