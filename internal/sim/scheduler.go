package sim

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hupe1980/golife/internal/grid"
	"github.com/hupe1980/golife/internal/kernel"
)

// State is the scheduler lifecycle state.
type State int32

const (
	StateUninitialized State = iota
	StateCalibrating
	StateReady
	StateStepping
	StateTerminated
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCalibrating:
		return "calibrating"
	case StateReady:
		return "ready"
	case StateStepping:
		return "stepping"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// rowRange is a half-open row interval [Lo, Hi).
type rowRange struct {
	Lo int
	Hi int
}

// Scheduler advances a grid one generation per Step call. The worker pool
// and lane-width profile are fixed at construction; the grid is mutated
// only here, and only through a full buffer swap.
type Scheduler struct {
	grid    *grid.Grid
	stepRow kernel.StepRowFunc
	lanes   int
	chunks  []rowRange
	pool    *WorkerPool

	state      atomic.Int32
	generation atomic.Uint64
	// throughput stores math.Float64bits of the last completed step's
	// cells-per-second, display only.
	throughput atomic.Uint64

	// faultHook, when set, is invoked per chunk before the kernel runs.
	// Test-only: lets tests force transactional step failures.
	faultHook func(chunk int) error
}

// New builds a scheduler over g using the kernel for profile's lane width
// and a fixed pool of `workers` goroutines (<=0 means GOMAXPROCS). The
// worker count is clamped to the grid height so every chunk is non-empty.
func New(g *grid.Grid, profile kernel.Profile, workers int) (*Scheduler, error) {
	stepRow, ok := kernel.ForLanes(profile.Lanes)
	if !ok {
		return nil, fmt.Errorf("no kernel registered for lane width %d", profile.Lanes)
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > g.Height() {
		workers = g.Height()
	}

	s := &Scheduler{
		grid:    g,
		stepRow: stepRow,
		lanes:   profile.Lanes,
		chunks:  partition(g.Height(), workers),
		pool:    NewWorkerPool(workers),
	}
	s.state.Store(int32(StateReady))

	return s, nil
}

// partition splits [0, height) into `workers` contiguous, disjoint chunks.
// A pure function of its arguments: chunk boundaries never depend on
// runtime completion order, which keeps generations reproducible.
func partition(height, workers int) []rowRange {
	base := height / workers
	rem := height % workers

	chunks := make([]rowRange, workers)
	lo := 0
	for i := range chunks {
		hi := lo + base
		if i < rem {
			hi++
		}
		chunks[i] = rowRange{Lo: lo, Hi: hi}
		lo = hi
	}
	return chunks
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State { return State(s.state.Load()) }

// Generation returns the number of completed generations.
func (s *Scheduler) Generation() uint64 { return s.generation.Load() }

// Lanes returns the lane width the kernels run at.
func (s *Scheduler) Lanes() int { return s.lanes }

// Workers returns the worker pool size.
func (s *Scheduler) Workers() int { return s.pool.Size() }

// CellsPerSec returns the throughput of the last completed step.
func (s *Scheduler) CellsPerSec() float64 {
	return math.Float64frombits(s.throughput.Load())
}

// Step advances the grid by exactly one generation, synchronously: it fans
// chunk tasks out to the pool and blocks on the join barrier. A failed
// chunk aborts the step with the back buffer discarded unswapped, so a
// failed step never partially mutates the visible generation, and the
// scheduler terminates.
func (s *Scheduler) Step(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(StateReady), int32(StateStepping)) {
		if s.State() == StateTerminated {
			return ErrTerminated
		}
		return ErrNotReady
	}

	start := time.Now()
	g := s.grid

	// Ghost refresh must complete before any chunk reads a boundary row.
	g.RefreshGhosts()

	errs := make([]error, len(s.chunks))
	var wg sync.WaitGroup
	for i, ch := range s.chunks {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			errs[i] = s.runChunk(i, ch)
		}
		if err := s.pool.Submit(ctx, task); err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	// Lowest failing chunk index wins, deterministically.
	for i, err := range errs {
		if err != nil {
			s.state.Store(int32(StateTerminated))
			return &StepError{Chunk: i, cause: err}
		}
	}

	g.SwapBuffers()
	s.generation.Add(1)

	elapsed := time.Since(start)
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	cells := float64(g.Width()) * float64(g.Height())
	s.throughput.Store(math.Float64bits(cells / elapsed.Seconds()))

	s.state.Store(int32(StateReady))
	return nil
}

// runChunk applies the row kernel to one chunk, reading only the current
// buffer (ghost rows included) and writing only its own rows of the back
// buffer. Panics are demoted to errors so an internal invariant violation
// surfaces as a StepError instead of tearing the process down.
func (s *Scheduler) runChunk(idx int, r rowRange) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("chunk panic: %v", rec)
		}
	}()

	if s.faultHook != nil {
		if err := s.faultHook(idx); err != nil {
			return err
		}
	}

	g := s.grid
	masks := g.Masks()
	for y := r.Lo; y < r.Hi; y++ {
		pr := y + 1
		s.stepRow(g.NextRow(pr), g.CurRow(pr-1), g.CurRow(pr), g.CurRow(pr+1), masks)
	}
	return nil
}

// Close terminates the scheduler and releases the worker pool. Idempotent;
// safe after a failed step.
func (s *Scheduler) Close() {
	s.state.Store(int32(StateTerminated))
	s.pool.Close()
}
