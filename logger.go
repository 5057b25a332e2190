package golife

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with golife-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithGrid adds width/height fields to the logger.
func (l *Logger) WithGrid(width, height int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width, "height", height),
	}
}

// WithGeneration adds a generation field to the logger.
func (l *Logger) WithGeneration(gen uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("generation", gen),
	}
}

// LogCalibration logs the calibration outcome. A fallback is a warning,
// not a failure: the simulation proceeds on the scalar path.
func (l *Logger) LogCalibration(ctx context.Context, lanes int, fallback bool, cellsPerSec map[int]float64) {
	if fallback {
		l.WarnContext(ctx, "calibration fell back to scalar path",
			"lanes", lanes,
		)
		return
	}
	l.DebugContext(ctx, "calibration completed",
		"lanes", lanes,
		"cells_per_sec", cellsPerSec,
	)
}

// LogStep logs a step operation.
func (l *Logger) LogStep(ctx context.Context, gen uint64, cellsPerSec float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"generation", gen,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "step completed",
			"generation", gen,
			"cells_per_sec", cellsPerSec,
		)
	}
}
