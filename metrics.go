package golife

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordStep is called after each step attempt. cells is the number of
	// cells processed, err is nil if the step committed.
	RecordStep(duration time.Duration, cells int, err error)

	// RecordCalibration is called once per engine after lane-width
	// calibration. fallback reports the scalar-recovery condition.
	RecordCalibration(lanes int, fallback bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordStep(time.Duration, int, error) {}
func (NoopMetricsCollector) RecordCalibration(int, bool)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	StepCount        atomic.Int64
	StepErrors       atomic.Int64
	StepTotalNanos   atomic.Int64
	CellsProcessed   atomic.Int64
	CalibrationLanes atomic.Int64
	Fallbacks        atomic.Int64
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(duration time.Duration, cells int, err error) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.StepErrors.Add(1)
		return
	}
	b.CellsProcessed.Add(int64(cells))
}

// RecordCalibration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCalibration(lanes int, fallback bool) {
	b.CalibrationLanes.Store(int64(lanes))
	if fallback {
		b.Fallbacks.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		StepCount:      b.StepCount.Load(),
		StepErrors:     b.StepErrors.Load(),
		StepAvgNanos:   b.avgStepNanos(),
		CellsProcessed: b.CellsProcessed.Load(),
		Lanes:          int(b.CalibrationLanes.Load()),
	}
}

func (b *BasicMetricsCollector) avgStepNanos() int64 {
	count := b.StepCount.Load()
	if count == 0 {
		return 0
	}
	return b.StepTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	StepCount      int64
	StepErrors     int64
	StepAvgNanos   int64
	CellsProcessed int64
	Lanes          int
}
