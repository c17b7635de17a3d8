package sqlite

import (
	"context"
	"fmt"

	"github.com/recenterhq/driftcheck/pkg/models"
)

func (r *SQLiteRepo) CreateCheckin(ctx context.Context, c *models.Checkin) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("checkin is nil")
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO checkins (user_id, energy, sleep, structure, initiation, engagement, sustainability, reflection_note, score, category, weakest_dimension, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.UserID,
		c.Answers.Energy, c.Answers.Sleep, c.Answers.Structure,
		c.Answers.Initiation, c.Answers.Engagement, c.Answers.Sustainability,
		c.ReflectionNote, c.Score, string(c.Category), string(c.WeakestDim), c.Created)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]models.Checkin, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT id, user_id, energy, sleep, structure, initiation, engagement, sustainability, reflection_note, score, category, weakest_dimension, created FROM checkins WHERE user_id = ? ORDER BY created DESC, id DESC LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Checkin
	for rows.Next() {
		var c models.Checkin
		if err := rows.Scan(&c.ID, &c.UserID,
			&c.Answers.Energy, &c.Answers.Sleep, &c.Answers.Structure,
			&c.Answers.Initiation, &c.Answers.Engagement, &c.Answers.Sustainability,
			&c.ReflectionNote, &c.Score, &c.Category, &c.WeakestDim, &c.Created); err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	row := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM checkins WHERE user_id = ?`, userID)
	var cnt int64
	if err := row.Scan(&cnt); err != nil {
		return 0, err
	}
	return cnt, nil
}

func (r *SQLiteRepo) RecentWeakestDimensions(ctx context.Context, userID int64, limit int) ([]models.Dimension, error) {
	if limit <= 0 {
		limit = 5
	}

	rows, err := r.conn.QueryRows(ctx, `SELECT weakest_dimension FROM checkins WHERE user_id = ? ORDER BY created DESC, id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Dimension
	for rows.Next() {
		var d models.Dimension
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
