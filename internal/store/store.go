// Package store is the client's local durable store: a SQLite-backed table of
// queued check-ins that survives process restarts. Each record is owned by
// the store until a confirmed submission deletes it; all operations are
// single-statement SQL, so records are atomic without cross-record
// transactions.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/recenterhq/driftcheck/internal/db"
	"github.com/recenterhq/driftcheck/pkg/models"
	"github.com/recenterhq/driftcheck/pkg/repository"
)

const schema = `CREATE TABLE IF NOT EXISTS queued_checkins (
	id              TEXT PRIMARY KEY,
	answers         TEXT NOT NULL,
	reflection_note TEXT,
	enqueued_at     INTEGER NOT NULL,
	synced          INTEGER NOT NULL DEFAULT 0
)`

// Store implements repository.QueueStore on SQLite.
type Store struct {
	conn *db.DB
}

var _ repository.QueueStore = (*Store)(nil)

// Open creates the queue table if needed and returns the store.
func Open(ctx context.Context, conn *db.DB) (*Store, error) {
	if _, err := conn.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure queued_checkins table: %w", err)
	}
	return &Store{conn: conn}, nil
}

func (s *Store) Add(ctx context.Context, q *models.QueuedCheckin) error {
	if q == nil {
		return fmt.Errorf("queued checkin is nil")
	}
	answers, err := json.Marshal(q.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = s.conn.Exec(ctx, `INSERT INTO queued_checkins (id, answers, reflection_note, enqueued_at, synced) VALUES (?, ?, ?, ?, 0)`,
		q.ID, string(answers), q.ReflectionNote, q.EnqueuedAt)
	if err != nil {
		return fmt.Errorf("add queued checkin: %w", err)
	}
	return nil
}

// ListUnsynced returns unsynced entries in insertion order.
func (s *Store) ListUnsynced(ctx context.Context) ([]models.QueuedCheckin, error) {
	rows, err := s.conn.QueryRows(ctx, `SELECT id, answers, reflection_note, enqueued_at, synced FROM queued_checkins WHERE synced = 0 ORDER BY enqueued_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list queued checkins: %w", err)
	}
	defer rows.Close()

	var out []models.QueuedCheckin
	for rows.Next() {
		var q models.QueuedCheckin
		var answers string
		if err := rows.Scan(&q.ID, &answers, &q.ReflectionNote, &q.EnqueuedAt, &q.Synced); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(answers), &q.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers for %s: %w", q.ID, err)
		}
		out = append(out, q)
	}

	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.conn.Exec(ctx, `DELETE FROM queued_checkins WHERE id = ?`, id)
	return err
}

func (s *Store) CountUnsynced(ctx context.Context) (int64, error) {
	row := s.conn.QueryRow(ctx, `SELECT COUNT(*) FROM queued_checkins WHERE synced = 0`)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}
