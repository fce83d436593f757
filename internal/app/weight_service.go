// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weightlog/internal/domain"
)

// Windows lists the history windows, in days, offered to the user.
var Windows = []int{7, 30, 90, 365}

// Clock returns the current time. Services default to time.Now.
type Clock func() time.Time

// WeightService encapsulates weight-tracking use cases.
type WeightService struct {
	repo domain.WeightRepository
	now  Clock
}

// NewWeightService creates a WeightService backed by the given repository.
// A nil clock means time.Now.
func NewWeightService(repo domain.WeightRepository, clock Clock) *WeightService {
	if clock == nil {
		clock = time.Now
	}
	return &WeightService{repo: repo, now: clock}
}

// RecordWeight validates and appends a measurement dated today.
func (s *WeightService) RecordWeight(ctx context.Context, user string, value float64) (domain.WeightEntry, error) {
	if err := domain.ValidateWeight(value); err != nil {
		return domain.WeightEntry{}, err
	}
	entry := domain.WeightEntry{Day: domain.StartOfDay(s.now()), Value: value}
	if err := s.repo.AppendWeight(ctx, user, entry); err != nil {
		return domain.WeightEntry{}, fmt.Errorf("record weight: %w", err)
	}
	return entry, nil
}

// History is the display view of a trailing window of the log.
type History struct {
	Days    int
	Cutoff  time.Time
	Entries []domain.WeightEntry
	// Padded is true when Entries[0] is a display-only zero-weight row.
	Padded bool
}

// History returns the entries dated on or after now minus days, padded for
// display when the window holds fewer rows than days.
func (s *WeightService) History(ctx context.Context, user string, days int) (History, error) {
	if days <= 0 {
		return History{}, errors.New("days must be > 0")
	}
	all, err := s.repo.ListWeights(ctx, user)
	if err != nil {
		return History{}, err
	}
	cutoff := s.now().AddDate(0, 0, -days)
	rows := withinWindow(all, cutoff)
	h := History{Days: days, Cutoff: cutoff, Entries: rows}
	if len(rows) < days {
		h.Entries = padWindow(rows, cutoff)
		h.Padded = true
	}
	return h, nil
}

func withinWindow(entries []domain.WeightEntry, cutoff time.Time) []domain.WeightEntry {
	out := make([]domain.WeightEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Day.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// padWindow prepends a zero-weight row dated on the cutoff's calendar day.
// The row exists only so charts start at the window edge; it must never be
// fed to projections.
func padWindow(entries []domain.WeightEntry, cutoff time.Time) []domain.WeightEntry {
	out := make([]domain.WeightEntry, 0, len(entries)+1)
	out = append(out, domain.WeightEntry{Day: domain.StartOfDay(cutoff), Value: 0})
	return append(out, entries...)
}
