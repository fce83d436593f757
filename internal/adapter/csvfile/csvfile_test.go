package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"weightlog/internal/adapter/csvfile"
	"weightlog/internal/domain"
)

func entry(t *testing.T, day string, v float64) domain.WeightEntry {
	t.Helper()
	d, err := domain.ParseDay(day)
	require.NoError(t, err)
	return domain.WeightEntry{Day: d, Value: v}
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	s := csvfile.New(dir, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, s.AppendWeight(ctx, "alice", entry(t, "2026-10-01", 80.5)))
	require.NoError(t, s.AppendWeight(ctx, "alice", entry(t, "2026-10-02", 80)))

	data, err := os.ReadFile(filepath.Join(dir, "alice_log.csv"))
	require.NoError(t, err)
	require.Equal(t, "Date,Weight\n2026-10-01,80.5\n2026-10-02,80\n", string(data))
}

func TestAppendPreservesPriorRows(t *testing.T) {
	dir := t.TempDir()
	prior := "Date,Weight\n2026-09-30,81.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bob_log.csv"), []byte(prior), 0o644))

	s := csvfile.New(dir, nil)
	require.NoError(t, s.AppendWeight(context.Background(), "bob", entry(t, "2026-10-01", 80.2)))

	data, err := os.ReadFile(filepath.Join(dir, "bob_log.csv"))
	require.NoError(t, err)
	require.Equal(t, prior+"2026-10-01,80.2\n", string(data))

	got, err := s.ListWeights(context.Background(), "bob")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 81.0, got[0].Value)
	require.Equal(t, "2026-10-01", got[1].DayString())
}

func TestListWeightsMissingLog(t *testing.T) {
	s := csvfile.New(t.TempDir(), nil)
	_, err := s.ListWeights(context.Background(), "nobody")
	require.ErrorIs(t, err, domain.ErrLogNotFound)
}

func TestListWeightsRejectsCorruptRows(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eve_log.csv"),
		[]byte("Date,Weight\n2026-10-01,heavy\n"), 0o644))

	s := csvfile.New(dir, nil)
	_, err := s.ListWeights(context.Background(), "eve")
	require.ErrorContains(t, err, "line 2")
}

func TestUsernamesAreCaseSensitive(t *testing.T) {
	dir := t.TempDir()
	s := csvfile.New(dir, nil)
	ctx := context.Background()

	require.NoError(t, s.AppendWeight(ctx, "Alice", entry(t, "2026-10-01", 60)))
	_, err := s.ListWeights(ctx, "alice")
	require.ErrorIs(t, err, domain.ErrLogNotFound)
	require.FileExists(t, filepath.Join(dir, "Alice_log.csv"))
}

func TestGoalOverwrite(t *testing.T) {
	dir := t.TempDir()
	s := csvfile.New(dir, nil)
	ctx := context.Background()

	_, err := s.GetGoal(ctx, "alice")
	require.ErrorIs(t, err, domain.ErrGoalNotSet)

	require.NoError(t, s.SetGoal(ctx, "alice", 70))
	require.NoError(t, s.SetGoal(ctx, "alice", 65.5))

	data, err := os.ReadFile(filepath.Join(dir, "alice_goal.txt"))
	require.NoError(t, err)
	require.Equal(t, "65.5", string(data))

	g, err := s.GetGoal(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 65.5, g)
}

func TestGoalInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alice_goal.txt"), []byte("sixty"), 0o644))

	s := csvfile.New(dir, nil)
	_, err := s.GetGoal(context.Background(), "alice")
	require.ErrorIs(t, err, domain.ErrGoalInvalid)
}

func TestGoalRejectsNonPositiveOrNonFinite(t *testing.T) {
	for _, body := range []string{"NaN", "Inf", "0", "-5"} {
		t.Run(body, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "alice_goal.txt"), []byte(body), 0o644))

			_, err := csvfile.New(dir, nil).GetGoal(context.Background(), "alice")
			require.ErrorIs(t, err, domain.ErrGoalInvalid)
		})
	}
}

func TestGoalAcceptsLegacyFormatting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alice_goal.txt"), []byte("65.0\n"), 0o644))

	g, err := csvfile.New(dir, nil).GetGoal(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, 65.0, g)
}
