// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sync"

	"weightlog/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu      sync.Mutex
	weights map[string][]domain.WeightEntry
	goals   map[string]float64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		weights: make(map[string][]domain.WeightEntry),
		goals:   make(map[string]float64),
	}
}

// Ensure interfaces are met.
var _ domain.WeightRepository = (*DB)(nil)
var _ domain.GoalRepository = (*DB)(nil)

// --- WeightRepository ---

// AppendWeight adds a weight entry after the user's existing ones.
func (db *DB) AppendWeight(ctx context.Context, user string, e domain.WeightEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.weights[user] = append(db.weights[user], e)
	return nil
}

// ListWeights returns a copy of the user's entries in insertion order.
func (db *DB) ListWeights(ctx context.Context, user string) ([]domain.WeightEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	entries, ok := db.weights[user]
	if !ok {
		return nil, domain.ErrLogNotFound
	}
	result := make([]domain.WeightEntry, len(entries))
	copy(result, entries)
	return result, nil
}

// --- GoalRepository ---

// SetGoal replaces the user's goal.
func (db *DB) SetGoal(ctx context.Context, user string, value float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.goals[user] = value
	return nil
}

// GetGoal returns the user's goal.
func (db *DB) GetGoal(ctx context.Context, user string) (float64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	v, ok := db.goals[user]
	if !ok {
		return 0, domain.ErrGoalNotSet
	}
	return v, nil
}
