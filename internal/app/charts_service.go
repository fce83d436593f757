package app

import (
	"context"
	"errors"
	"fmt"

	"weightlog/internal/domain"
)

// ErrChartNotSaved wraps renderer failures. The returned History is still
// valid when it is set.
var ErrChartNotSaved = errors.New("chart not saved")

// ChartsService renders history windows to a chart file.
type ChartsService struct {
	weights  *WeightService
	renderer domain.ChartRenderer
	path     string
}

// NewChartsService creates a ChartsService that overwrites path on every render.
func NewChartsService(ws *WeightService, r domain.ChartRenderer, path string) *ChartsService {
	return &ChartsService{weights: ws, renderer: r, path: path}
}

// Path returns the chart output path.
func (s *ChartsService) Path() string {
	return s.path
}

// RenderHistory loads the window and writes it to the chart path. The chart
// is not touched when the log is missing.
func (s *ChartsService) RenderHistory(ctx context.Context, user string, days int) (History, error) {
	if s.path == "" {
		return History{}, errors.New("chart path is empty")
	}
	h, err := s.weights.History(ctx, user, days)
	if err != nil {
		return History{}, err
	}
	if err := s.renderer.RenderWeights(s.path, h.Entries); err != nil {
		return h, fmt.Errorf("%w: %w", ErrChartNotSaved, err)
	}
	return h, nil
}
