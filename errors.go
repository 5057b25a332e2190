package golife

import (
	"errors"
	"fmt"

	"github.com/hupe1980/golife/internal/sim"
)

var (
	// ErrConfiguration indicates a malformed or zero-size grid at
	// construction. Fatal; raised before any stepping.
	ErrConfiguration = errors.New("invalid grid configuration")

	// ErrTerminated is returned by Step once the engine has terminated,
	// either by Close or by a failed step. Terminated is absorbing.
	ErrTerminated = errors.New("engine terminated")
)

// StepExecutionError indicates that a worker chunk task failed. The step
// was aborted with the back buffer discarded unswapped: the last
// successfully completed generation remains the observable state, and the
// engine is terminated. Not retried automatically.
//
// The underlying chunk error can be accessed via errors.Unwrap.
type StepExecutionError struct {
	Chunk int
	cause error
}

func (e *StepExecutionError) Error() string {
	return fmt.Sprintf("step execution failed (row chunk %d): %v", e.Chunk, e.cause)
}

func (e *StepExecutionError) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sim.ErrTerminated) {
		return fmt.Errorf("%w: %w", ErrTerminated, err)
	}

	var se *sim.StepError
	if errors.As(err, &se) {
		return &StepExecutionError{Chunk: se.Chunk, cause: err}
	}

	return err
}
