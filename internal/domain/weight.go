// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"math"
	"time"
)

// Unit is the only unit measurements are recorded in.
const Unit = "kg"

// DayLayout is the calendar-day format used in logs and tables.
const DayLayout = "2006-01-02"

var (
	// ErrLogNotFound indicates that no measurement log exists for the user.
	ErrLogNotFound = errors.New("weight log not found")
	// ErrGoalNotSet indicates that no goal has been stored for the user.
	ErrGoalNotSet = errors.New("goal weight not set")
	// ErrGoalInvalid indicates that the stored goal could not be parsed.
	ErrGoalInvalid = errors.New("invalid goal weight")
	// ErrInvalidWeight indicates a weight that is not a positive finite number.
	ErrInvalidWeight = errors.New("weight must be a positive number")
)

// WeightEntry represents a single weight measurement.
type WeightEntry struct {
	Day   time.Time `json:"day"`
	Value float64   `json:"value"`
}

// DayString returns the entry's calendar day as YYYY-MM-DD.
func (e WeightEntry) DayString() string {
	return e.Day.Format(DayLayout)
}

// ValidateWeight reports ErrInvalidWeight for zero, negative, NaN or infinite values.
func ValidateWeight(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return ErrInvalidWeight
	}
	return nil
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(time.Local).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// ParseDay parses a YYYY-MM-DD string at local midnight.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, time.Local)
}

// WeightRepository is the port for the append-only measurement log.
type WeightRepository interface {
	// AppendWeight adds e after every existing entry.
	AppendWeight(ctx context.Context, user string, e WeightEntry) error
	// ListWeights returns all entries in insertion order, or ErrLogNotFound
	// when the user has never logged a weight.
	ListWeights(ctx context.Context, user string) ([]WeightEntry, error)
}

// GoalRepository is the port for the single goal value per user.
type GoalRepository interface {
	SetGoal(ctx context.Context, user string, value float64) error
	GetGoal(ctx context.Context, user string) (float64, error)
}
