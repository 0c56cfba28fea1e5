package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/lenslink/lenslink/internal/errors"
	"github.com/lenslink/lenslink/model"
)

// RecordSwipe stores a swipe verdict, replacing any earlier verdict the
// same user had on the same target.
func (s *Store) RecordSwipe(ctx context.Context, swipe model.Swipe) error {
	swipe.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO swipes (from_user_id, to_user_id, direction, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT (from_user_id, to_user_id) DO UPDATE SET direction = excluded.direction, created_at = excluded.created_at`,
		swipe.FromUserID, swipe.ToUserID, string(swipe.Direction), swipe.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record swipe: %w", err)
	}
	return nil
}

// HasLike reports whether from currently likes to.
func (s *Store) HasLike(ctx context.Context, from, to string) (bool, error) {
	var direction string
	err := s.db.QueryRowContext(ctx,
		`SELECT direction FROM swipes WHERE from_user_id = ? AND to_user_id = ?`, from, to,
	).Scan(&direction)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup swipe: %w", err)
	}
	return model.SwipeDirection(direction) == model.SwipeLike, nil
}

// EnsureThread returns the conversation between two users, creating it on
// first use. The participant pair is stored in lexical order so lookups
// are direction-independent.
func (s *Store) EnsureThread(ctx context.Context, userA, userB string) (model.Thread, error) {
	a, b := orderPair(userA, userB)

	var t model.Thread
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_a, user_b, created_at FROM threads WHERE user_a = ? AND user_b = ?`, a, b,
	).Scan(&t.ID, &t.UserA, &t.UserB, &t.CreatedAt)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Thread{}, fmt.Errorf("lookup thread: %w", err)
	}

	t = model.Thread{
		ID:        uuid.New().String(),
		UserA:     a,
		UserB:     b,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO threads (id, user_a, user_b, created_at) VALUES (?, ?, ?, ?)`,
		t.ID, t.UserA, t.UserB, t.CreatedAt,
	); err != nil {
		return model.Thread{}, fmt.Errorf("insert thread: %w", err)
	}
	return t, nil
}

// GetThread fetches one thread by ID.
func (s *Store) GetThread(ctx context.Context, id string) (model.Thread, error) {
	var t model.Thread
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_a, user_b, created_at FROM threads WHERE id = ?`, id,
	).Scan(&t.ID, &t.UserA, &t.UserB, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Thread{}, apperrors.NewThreadNotFoundError(id)
	}
	if err != nil {
		return model.Thread{}, fmt.Errorf("get thread: %w", err)
	}
	return t, nil
}

// ListThreads returns every thread the user participates in, newest first.
func (s *Store) ListThreads(ctx context.Context, userID string) ([]model.Thread, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, user_a, user_b, created_at FROM threads
WHERE user_a = ? OR user_b = ? ORDER BY created_at DESC`, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}
	defer rows.Close()

	threads := make([]model.Thread, 0)
	for rows.Next() {
		var t model.Thread
		if err := rows.Scan(&t.ID, &t.UserA, &t.UserB, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	return threads, rows.Err()
}

// AddMessage appends a message to a thread.
func (s *Store) AddMessage(ctx context.Context, m model.Message) (model.Message, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now().UTC()

	if _, err := s.GetThread(ctx, m.ThreadID); err != nil {
		return model.Message{}, err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, thread_id, sender_id, body, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.ThreadID, m.SenderID, m.Body, m.CreatedAt,
	); err != nil {
		return model.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return m, nil
}

// ListMessages returns a page of a thread's messages in send order.
func (s *Store) ListMessages(ctx context.Context, threadID string, limit, offset int) ([]model.Message, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, thread_id, sender_id, body, created_at FROM messages
WHERE thread_id = ? ORDER BY created_at, id LIMIT ? OFFSET ?`, threadID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]model.Message, 0, limit)
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.ThreadID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func orderPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
