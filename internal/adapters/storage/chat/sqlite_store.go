package chat

import (
	"context"
	"time"

	"padelcygnus/internal/adapters/storage"
	domain "padelcygnus/internal/domain/chat"
)

// timeLayout is fixed-width so stored timestamps compare correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new chat SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Append inserts a message at the end of its conversation.
// PRE: m has been validated
// POST: Returned message carries a Seq greater than every earlier message
func (s *SQLiteStore) Append(ctx context.Context, m domain.Message) (domain.Message, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO chat_message (conversation_id, sender, text, created_at) VALUES (?, ?, ?, ?)",
		m.ConversationID, m.Sender, m.Text, m.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return domain.Message{}, err
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return domain.Message{}, err
	}
	m.Seq = seq
	return m, nil
}

// ListByConversation returns messages with Seq > afterSeq in transcript order.
// PRE: conversationID is non-empty
// POST: Returns messages ordered by Seq ascending
func (s *SQLiteStore) ListByConversation(ctx context.Context, conversationID string, afterSeq int64) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT seq, conversation_id, sender, text, created_at FROM chat_message WHERE conversation_id = ? AND seq > ? ORDER BY seq",
		conversationID, afterSeq,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Message
	for rows.Next() {
		var m domain.Message
		var createdAt string
		if err := rows.Scan(&m.Seq, &m.ConversationID, &m.Sender, &m.Text, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		results = append(results, m)
	}
	return results, rows.Err()
}

// DeleteConversation removes an entire transcript.
// PRE: conversationID is non-empty
// POST: No messages remain for conversationID
func (s *SQLiteStore) DeleteConversation(ctx context.Context, conversationID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM chat_message WHERE conversation_id = ?", conversationID)
	return err
}

// IdleConversations lists conversations whose newest message is older than cutoff.
// POST: Returned ids are distinct
func (s *SQLiteStore) IdleConversations(ctx context.Context, cutoff time.Time) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT conversation_id FROM chat_message GROUP BY conversation_id HAVING MAX(created_at) < ?",
		cutoff.UTC().Format(timeLayout),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
