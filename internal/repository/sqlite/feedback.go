package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/recenterhq/driftcheck/pkg/models"
)

func (r *SQLiteRepo) CreateFeedback(ctx context.Context, e *models.TipFeedbackEntry) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("feedback entry is nil")
	}
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO tip_feedback (user_id, dimension, category, feedback, created) VALUES (?, ?, ?, ?, ?)`,
		e.UserID, string(e.Dimension), string(e.Category), string(e.Feedback), created.Unix())
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// ListFeedbackByUser returns the full append-only feedback history, newest
// first.
func (r *SQLiteRepo) ListFeedbackByUser(ctx context.Context, userID int64) ([]models.TipFeedbackEntry, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, dimension, category, feedback, created FROM tip_feedback WHERE user_id = ? ORDER BY created DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.TipFeedbackEntry
	for rows.Next() {
		var e models.TipFeedbackEntry
		var created int64
		if err := rows.Scan(&e.ID, &e.UserID, &e.Dimension, &e.Category, &e.Feedback, &created); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(created, 0).UTC()
		out = append(out, e)
	}

	return out, rows.Err()
}
