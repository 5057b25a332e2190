package golife

import (
	"log/slog"

	"github.com/hupe1980/golife/internal/grid"
)

// Boundary selects how cells outside the logical grid behave.
type Boundary = grid.Boundary

const (
	// BoundaryDead treats everything outside the grid as permanently dead
	// (the default, matching the ghost-cell design).
	BoundaryDead = grid.BoundaryDead
	// BoundaryWrap wraps the grid toroidally.
	BoundaryWrap = grid.BoundaryWrap
)

type options struct {
	boundary Boundary
	workers  int
	lanes    int // 0 = calibrate
	logger   *Logger
	metrics  MetricsCollector
}

// Option configures engine construction.
type Option func(*options)

// WithBoundary configures the boundary policy. The policy is fixed for the
// engine's lifetime.
func WithBoundary(b Boundary) Option {
	return func(o *options) {
		o.boundary = b
	}
}

// WithWorkers configures the worker pool size. Values <= 0 select the
// hardware core count (GOMAXPROCS). The count is fixed at construction;
// chunk partitioning depends only on it and the grid height, so results
// are reproducible for a given setting.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLanes forces a kernel lane width (1, 4, 8 or 16) and skips
// calibration. Every width computes identical results on every platform;
// forcing one is mainly useful for benchmarking and reproducing
// lane-width-determinism tests. Invalid widths are rejected at New.
func WithLanes(n int) Option {
	return func(o *options) {
		o.lanes = n
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		boundary: BoundaryDead,
		logger:   NoopLogger(),
		metrics:  NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
