// Package sqlite implements the domain repositories in a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"weightlog/internal/domain"
)

// DB wraps a *sql.DB and implements domain repository interfaces.
type DB struct {
	sql    *sql.DB
	logger *zap.Logger
}

var (
	_ domain.WeightRepository = (*DB)(nil)
	_ domain.GoalRepository   = (*DB)(nil)
)

// Open opens (or creates) the database file at path and applies the schema.
func Open(ctx context.Context, path string, logger *zap.Logger) (*DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One writer at a time.
	s.SetMaxOpenConns(1)

	d := &DB{sql: s, logger: logger}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	logger.Debug("sqlite opened", zap.String("path", path))
	return d, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS weight_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			day TEXT NOT NULL,
			value REAL NOT NULL CHECK(value > 0)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_weight_entries_username ON weight_entries(username, id);`,
		`CREATE TABLE IF NOT EXISTS goals (
			username TEXT PRIMARY KEY,
			value REAL NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// AppendWeight inserts a new weight entry.
func (d *DB) AppendWeight(ctx context.Context, user string, e domain.WeightEntry) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO weight_entries(username, day, value) VALUES(?, ?, ?);`,
		user, e.DayString(), e.Value,
	)
	return err
}

// ListWeights returns the user's entries in insertion order.
func (d *DB) ListWeights(ctx context.Context, user string) ([]domain.WeightEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT day, value FROM weight_entries WHERE username = ? ORDER BY id;`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WeightEntry
	for rows.Next() {
		var day string
		var e domain.WeightEntry
		if err := rows.Scan(&day, &e.Value); err != nil {
			return nil, err
		}
		if e.Day, err = domain.ParseDay(day); err != nil {
			return nil, fmt.Errorf("bad day %q: %w", day, err)
		}
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

// SetGoal upserts the user's goal.
func (d *DB) SetGoal(ctx context.Context, user string, value float64) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO goals(username, value) VALUES(?, ?) ON CONFLICT(username) DO UPDATE SET value = excluded.value;`,
		user, value,
	)
	return err
}

// GetGoal returns the user's goal.
func (d *DB) GetGoal(ctx context.Context, user string) (float64, error) {
	var v float64
	err := d.sql.QueryRowContext(ctx, `SELECT value FROM goals WHERE username = ?;`, user).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrGoalNotSet
	}
	return v, err
}
