// Package csvfile implements the domain repositories on plain files: an
// append-only CSV log and a one-number goal file per user.
//
// Nothing guards against two processes writing the same user's files.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"weightlog/internal/domain"
)

var header = []string{"Date", "Weight"}

// Store keeps each user's files under a single directory.
type Store struct {
	dir    string
	logger *zap.Logger
}

var (
	_ domain.WeightRepository = (*Store)(nil)
	_ domain.GoalRepository   = (*Store)(nil)
)

// New creates a Store rooted at dir. An empty dir means the working directory.
func New(dir string, logger *zap.Logger) *Store {
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

// LogPath returns the path of user's measurement log.
func (s *Store) LogPath(user string) string {
	return filepath.Join(s.dir, user+"_log.csv")
}

// GoalPath returns the path of user's goal file.
func (s *Store) GoalPath(user string) string {
	return filepath.Join(s.dir, user+"_goal.txt")
}

// AppendWeight appends one row, writing the header first if the log is empty.
func (s *Store) AppendWeight(_ context.Context, user string, e domain.WeightEntry) error {
	path := s.LogPath(user)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return err
		}
	}
	if err := w.Write([]string{e.DayString(), formatWeight(e.Value)}); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	s.logger.Debug("appended weight", zap.String("path", path), zap.String("day", e.DayString()), zap.Float64("value", e.Value))
	return f.Close()
}

// ListWeights reads the whole log in file order.
func (s *Store) ListWeights(_ context.Context, user string) ([]domain.WeightEntry, error) {
	path := s.LogPath(user)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrLogNotFound
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	entries, err := readLog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.logger.Debug("read weight log", zap.String("path", path), zap.Int("rows", len(entries)))
	return entries, nil
}

func readLog(r io.Reader) ([]domain.WeightEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	var out []domain.WeightEntry
	first := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		if first {
			first = false
			if rec[0] == header[0] && rec[1] == header[1] {
				continue
			}
		}
		line, _ := cr.FieldPos(0)
		day, err := domain.ParseDay(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad date %q", line, rec[0])
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad weight %q", line, rec[1])
		}
		out = append(out, domain.WeightEntry{Day: day, Value: v})
	}
}

// SetGoal replaces the goal file's contents with value.
func (s *Store) SetGoal(_ context.Context, user string, value float64) error {
	path := s.GoalPath(user)
	if err := os.WriteFile(path, []byte(formatWeight(value)), 0o644); err != nil {
		return err
	}
	s.logger.Debug("wrote goal", zap.String("path", path), zap.Float64("value", value))
	return nil
}

// GetGoal reads the goal file.
func (s *Store) GetGoal(_ context.Context, user string) (float64, error) {
	path := s.GoalPath(user)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, domain.ErrGoalNotSet
		}
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err == nil {
		err = domain.ValidateWeight(v)
	}
	if err != nil {
		s.logger.Debug("unusable goal", zap.String("path", path), zap.Error(err))
		return 0, domain.ErrGoalInvalid
	}
	return v, nil
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
