// Package chart renders weight history as a PNG line chart using gonum/plot.
package chart

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"weightlog/internal/domain"
)

// Renderer writes line charts of weight over time.
type Renderer struct {
	Width  vg.Length
	Height vg.Length
}

var _ domain.ChartRenderer = (*Renderer)(nil)

// NewRenderer returns a Renderer with an 8x4 inch canvas.
func NewRenderer() *Renderer {
	return &Renderer{Width: 8 * vg.Inch, Height: 4 * vg.Inch}
}

// RenderWeights draws entries in order and saves the chart to path,
// replacing any existing file. The image format follows path's extension.
func (r *Renderer) RenderWeights(path string, entries []domain.WeightEntry) error {
	if len(entries) == 0 {
		return errors.New("no entries to plot")
	}

	p := plot.New()
	p.Title.Text = "Weight over time"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = fmt.Sprintf("Weight (%s)", domain.Unit)
	p.X.Tick.Marker = plot.TimeTicks{Format: domain.DayLayout, Time: localTime}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(entries))
	for i, e := range entries {
		pts[i].X = float64(e.Day.Unix())
		pts[i].Y = e.Value
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(r.Width, r.Height, path)
}

func localTime(t float64) time.Time {
	return time.Unix(int64(t), 0).In(time.Local)
}
