package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weightlog/internal/domain"
)

// SetGoal upserts the user's goal.
func (d *DB) SetGoal(ctx context.Context, user string, value float64) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO goals(username, value, updated_at) VALUES($1, $2, now()) ON CONFLICT (username) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;",
		user, value,
	)
	return err
}

// GetGoal returns the user's goal.
func (d *DB) GetGoal(ctx context.Context, user string) (float64, error) {
	var v float64
	err := d.sql.QueryRowContext(ctx, "SELECT value FROM goals WHERE username = $1;", user).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrGoalNotSet
	}
	return v, err
}
