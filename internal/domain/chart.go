package domain

// ChartRenderer is the port for writing a weight-over-time chart to a file.
type ChartRenderer interface {
	RenderWeights(path string, entries []WeightEntry) error
}
