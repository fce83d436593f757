package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"weightlog/internal/app"
	"weightlog/internal/domain"
)

type mockWeightRepo struct {
	appendFn func(ctx context.Context, user string, e domain.WeightEntry) error
	listFn   func(ctx context.Context, user string) ([]domain.WeightEntry, error)
}

func (m *mockWeightRepo) AppendWeight(ctx context.Context, user string, e domain.WeightEntry) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, user, e)
	}
	return nil
}

func (m *mockWeightRepo) ListWeights(ctx context.Context, user string) ([]domain.WeightEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, user)
	}
	return nil, nil
}

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

// daysAgo returns an entry dated n days before fixedNow.
func daysAgo(n int, v float64) domain.WeightEntry {
	return domain.WeightEntry{Day: domain.StartOfDay(fixedNow.AddDate(0, 0, -n)), Value: v}
}

func TestRecordWeight_Validation(t *testing.T) {
	called := false
	repo := &mockWeightRepo{
		appendFn: func(_ context.Context, _ string, _ domain.WeightEntry) error {
			called = true
			return nil
		},
	}
	svc := app.NewWeightService(repo, fixedClock)

	tests := []struct {
		name  string
		value float64
	}{
		{"zero value", 0},
		{"negative value", -5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordWeight(context.Background(), "alice", tc.value)
			if !errors.Is(err, domain.ErrInvalidWeight) {
				t.Fatalf("expected ErrInvalidWeight, got %v", err)
			}
		})
	}
	if called {
		t.Fatal("repository must not be written on invalid input")
	}
}

func TestRecordWeight_Success(t *testing.T) {
	var got domain.WeightEntry
	var gotUser string
	repo := &mockWeightRepo{
		appendFn: func(_ context.Context, user string, e domain.WeightEntry) error {
			gotUser, got = user, e
			return nil
		},
	}
	svc := app.NewWeightService(repo, fixedClock)
	entry, err := svc.RecordWeight(context.Background(), "alice", 80.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser != "alice" {
		t.Errorf("expected user alice, got %q", gotUser)
	}
	if got.DayString() != "2026-10-19" || got.Value != 80.4 {
		t.Fatalf("unexpected entry appended: %+v", got)
	}
	if entry != got {
		t.Errorf("returned entry %+v differs from appended %+v", entry, got)
	}
}

func TestRecordWeight_RepoError(t *testing.T) {
	repo := &mockWeightRepo{
		appendFn: func(_ context.Context, _ string, _ domain.WeightEntry) error {
			return errors.New("disk full")
		},
	}
	svc := app.NewWeightService(repo, fixedClock)
	if _, err := svc.RecordWeight(context.Background(), "alice", 80); err == nil {
		t.Fatal("expected error from repo")
	}
}

func TestHistory_PadsShortWindow(t *testing.T) {
	repo := &mockWeightRepo{
		listFn: func(_ context.Context, _ string) ([]domain.WeightEntry, error) {
			return []domain.WeightEntry{
				daysAgo(10, 82),
				daysAgo(7, 81), // midnight seven days ago is before the cutoff instant
				daysAgo(6, 80),
				daysAgo(1, 79),
				daysAgo(0, 78),
			}, nil
		},
	}
	svc := app.NewWeightService(repo, fixedClock)
	h, err := svc.History(context.Background(), "alice", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.Padded {
		t.Fatal("expected padded history")
	}
	if len(h.Entries) != 4 {
		t.Fatalf("expected sentinel + 3 rows, got %d: %+v", len(h.Entries), h.Entries)
	}
	sentinel := h.Entries[0]
	if sentinel.Value != 0 || sentinel.DayString() != "2026-10-12" {
		t.Errorf("unexpected sentinel row: %+v", sentinel)
	}
	for i, want := range []float64{80, 79, 78} {
		if h.Entries[i+1].Value != want {
			t.Errorf("row %d: expected %v, got %v", i+1, want, h.Entries[i+1].Value)
		}
	}
}

func TestHistory_FullWindowHasNoSentinel(t *testing.T) {
	var entries []domain.WeightEntry
	for n := 9; n >= 0; n-- {
		entries = append(entries, daysAgo(n, 70+float64(n)))
	}
	repo := &mockWeightRepo{
		listFn: func(_ context.Context, _ string) ([]domain.WeightEntry, error) { return entries, nil },
	}
	svc := app.NewWeightService(repo, fixedClock)
	h, err := svc.History(context.Background(), "alice", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Padded {
		t.Fatal("expected no sentinel when the window is full")
	}
	if len(h.Entries) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(h.Entries))
	}
	for _, e := range h.Entries {
		if e.Day.Before(h.Cutoff) {
			t.Errorf("row %s is before cutoff %s", e.DayString(), h.Cutoff)
		}
		if e.Value == 0 {
			t.Errorf("unexpected zero row %+v", e)
		}
	}
}

func TestHistory_MissingLog(t *testing.T) {
	repo := &mockWeightRepo{
		listFn: func(_ context.Context, _ string) ([]domain.WeightEntry, error) {
			return nil, domain.ErrLogNotFound
		},
	}
	svc := app.NewWeightService(repo, fixedClock)
	_, err := svc.History(context.Background(), "alice", 30)
	if !errors.Is(err, domain.ErrLogNotFound) {
		t.Fatalf("expected ErrLogNotFound, got %v", err)
	}
}

func TestHistory_RejectsNonPositiveWindow(t *testing.T) {
	svc := app.NewWeightService(&mockWeightRepo{}, fixedClock)
	if _, err := svc.History(context.Background(), "alice", 0); err == nil {
		t.Fatal("expected error for zero-day window")
	}
}
