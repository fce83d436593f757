package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"weightlog/internal/domain"
)

func TestWeightRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	// Missing log
	if _, err := db.ListWeights(ctx, "alice"); !errors.Is(err, domain.ErrLogNotFound) {
		t.Fatalf("expected ErrLogNotFound, got %v", err)
	}

	day := domain.StartOfDay(time.Now())
	if err := db.AppendWeight(ctx, "alice", domain.WeightEntry{Day: day, Value: 70}); err != nil {
		t.Fatalf("AppendWeight: %v", err)
	}
	_ = db.AppendWeight(ctx, "alice", domain.WeightEntry{Day: day, Value: 69.5})

	events, err := db.ListWeights(ctx, "alice")
	if err != nil {
		t.Fatalf("ListWeights: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(events))
	}
	if events[0].Value != 70 || events[1].Value != 69.5 {
		t.Errorf("expected insertion order, got %+v", events)
	}

	// Returned slice is a copy
	events[0].Value = 1
	again, _ := db.ListWeights(ctx, "alice")
	if again[0].Value != 70 {
		t.Error("ListWeights must not expose internal storage")
	}

	// Other user sees nothing
	if _, err := db.ListWeights(ctx, "bob"); !errors.Is(err, domain.ErrLogNotFound) {
		t.Error("expected no log for other user")
	}
}

func TestGoalRepository(t *testing.T) {
	db := New()
	ctx := context.Background()

	if _, err := db.GetGoal(ctx, "alice"); !errors.Is(err, domain.ErrGoalNotSet) {
		t.Fatalf("expected ErrGoalNotSet, got %v", err)
	}
	_ = db.SetGoal(ctx, "alice", 70)
	_ = db.SetGoal(ctx, "alice", 65)

	g, err := db.GetGoal(ctx, "alice")
	if err != nil {
		t.Fatalf("GetGoal: %v", err)
	}
	if g != 65 {
		t.Errorf("expected 65, got %v", g)
	}
}
