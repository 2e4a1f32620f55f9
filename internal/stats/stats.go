// Package stats records per-generation engine measurements.
package stats

import (
	"log/slog"
	"time"

	"chunklife/pkg/life"
)

// Sample is one row of the stats stream.
type Sample struct {
	Generation int   `csv:"generation"`
	Population int   `csv:"population"`
	Chunks     int   `csv:"chunks"`
	Sleeping   int   `csv:"sleeping"`
	StepMicros int64 `csv:"step_us"`
}

// Measure builds a sample from the engine's current state. elapsed is the
// wall time spent producing it.
func Measure(e *life.Engine, elapsed time.Duration) Sample {
	st := e.Stats()
	return Sample{
		Generation: st.Generation,
		Population: st.Population,
		Chunks:     st.Chunks,
		Sleeping:   st.Sleeping,
		StepMicros: elapsed.Microseconds(),
	}
}

// Awake is the number of chunks that were stepped.
func (s Sample) Awake() int { return s.Chunks - s.Sleeping }

// LogValue implements slog.LogValuer for structured logging.
func (s Sample) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generation", s.Generation),
		slog.Int("population", s.Population),
		slog.Int("chunks", s.Chunks),
		slog.Int("sleeping", s.Sleeping),
		slog.Int64("step_us", s.StepMicros),
	)
}
