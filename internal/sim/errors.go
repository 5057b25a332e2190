package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolClosed is returned when submitting work to a closed pool.
	ErrPoolClosed = errors.New("worker pool closed")

	// ErrTerminated is returned by Step once the scheduler has entered the
	// terminated state. Terminated is absorbing: no further steps run.
	ErrTerminated = errors.New("scheduler terminated")

	// ErrNotReady is returned when Step is called while another step is
	// still running.
	ErrNotReady = errors.New("scheduler not ready")
)

// StepError reports a failed chunk task. The step it belongs to was
// discarded unswapped; the externally visible generation is unchanged.
// When several chunks fail in the same step, the reported chunk is
// deterministically the lowest row-chunk index.
type StepError struct {
	Chunk int
	cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step failed in row chunk %d: %v", e.Chunk, e.cause)
}

func (e *StepError) Unwrap() error { return e.cause }
