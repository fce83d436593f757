package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"

	"weightlog/internal/domain"
)

// AppendWeight inserts a new weight entry.
func (d *DB) AppendWeight(ctx context.Context, user string, e domain.WeightEntry) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO weight_entries(username, day, value) VALUES($1, $2, $3);",
		user, e.DayString(), e.Value,
	)
	if err == nil {
		d.logger.Debug("inserted weight", zap.String("user", user), zap.String("day", e.DayString()))
	}
	return err
}

// ListWeights returns the user's entries in insertion order.
func (d *DB) ListWeights(ctx context.Context, user string) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT day, value FROM weight_entries WHERE username = $1 ORDER BY id;", user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WeightEntry
	for rows.Next() {
		var day time.Time
		var e domain.WeightEntry
		if err := rows.Scan(&day, &e.Value); err != nil {
			return nil, err
		}
		// DATE columns come back as UTC midnight; re-anchor the calendar day locally.
		e.Day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, domain.ErrLogNotFound
	}
	return out, nil
}
