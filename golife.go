package golife

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/golife/internal/grid"
	"github.com/hupe1980/golife/internal/kernel"
	"github.com/hupe1980/golife/internal/sim"
)

// Engine is a Game of Life simulation over a fixed-size grid.
//
// Construction validates the initial cells, calibrates the kernel lane
// width once, and builds the worker pool; Step then advances one
// generation per call. An Engine is safe for concurrent reads between
// steps; Step itself must not be called concurrently.
type Engine struct {
	opts    options
	grid    *grid.Grid
	sched   *sim.Scheduler
	profile kernel.Profile
	closed  atomic.Bool
}

// Stats is a read-only snapshot of engine configuration and throughput.
type Stats struct {
	Width       int
	Height      int
	Boundary    Boundary
	Lanes       int
	Fallback    bool
	Workers     int
	Generation  uint64
	CellsPerSec float64 // last completed step, display only
}

// New builds an engine from a rectangular boolean matrix.
//
// It fails with an error wrapping ErrConfiguration when width or height is
// zero, the matrix is not rectangular, or its dimensions do not match
// width x height.
func New(width, height int, cells [][]bool, optFns ...Option) (*Engine, error) {
	o := applyOptions(optFns)
	ctx := context.Background()

	g, err := grid.New(width, height, cells, o.boundary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	profile := calibrate(o)
	o.logger.WithGrid(width, height).LogCalibration(ctx, profile.Lanes, profile.Fallback, profile.CellsPerSec)
	o.metrics.RecordCalibration(profile.Lanes, profile.Fallback)

	sched, err := sim.New(g, profile, o.workers)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return &Engine{
		opts:    o,
		grid:    g,
		sched:   sched,
		profile: profile,
	}, nil
}

// calibrate resolves the lane width: an explicit WithLanes wins, then the
// GOLIFE_LANES override, then the measured profile. Runs exactly once per
// engine; the result is immutable for the engine's lifetime.
func calibrate(o options) kernel.Profile {
	if o.lanes != 0 {
		if _, ok := kernel.ForLanes(o.lanes); ok {
			return kernel.Profile{Lanes: o.lanes}
		}
		// Unknown width: scalar recovery, surfaced as a fallback.
		return kernel.Profile{Lanes: 1, Fallback: true}
	}
	if forced, ok := kernel.ForcedLanes(); ok {
		return kernel.Profile{Lanes: forced}
	}
	return kernel.Calibrate()
}

// Step advances the simulation by exactly one generation. It blocks until
// every row chunk has completed. On failure the visible generation is
// unchanged and the engine terminates; further steps return ErrTerminated.
func (e *Engine) Step(ctx context.Context) error {
	if e.closed.Load() {
		return ErrTerminated
	}

	start := time.Now()
	err := translateError(e.sched.Step(ctx))

	e.opts.metrics.RecordStep(time.Since(start), e.grid.Width()*e.grid.Height(), err)
	e.opts.logger.LogStep(ctx, e.sched.Generation(), e.sched.CellsPerSec(), err)

	return err
}

// Run advances the simulation by n generations, stopping at the first
// failed step.
func (e *Engine) Run(ctx context.Context, n int) error {
	for range n {
		if err := e.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Width returns the grid width in cells.
func (e *Engine) Width() int { return e.grid.Width() }

// Height returns the grid height in cells.
func (e *Engine) Height() int { return e.grid.Height() }

// Boundary returns the configured boundary policy.
func (e *Engine) Boundary() Boundary { return e.grid.Boundary() }

// Generation returns the index of the current generation, starting at 0.
func (e *Engine) Generation() uint64 { return e.sched.Generation() }

// Get reads one cell of the current generation. Out-of-range coordinates
// read as dead.
func (e *Engine) Get(x, y int) bool { return e.grid.Get(x, y) }

// Live returns a lazy, restartable iterator over the live cell coordinates
// of the current generation, in row-major order. Valid between steps.
func (e *Engine) Live() iter.Seq2[int, int] { return e.grid.Live() }

// LiveCells returns the live cells of the current generation as a
// compressed bitmap keyed by y*width+x. The bitmap is a snapshot; later
// steps do not mutate it.
func (e *Engine) LiveCells() *roaring64.Bitmap {
	bm := roaring64.New()
	w := uint64(e.grid.Width())
	for x, y := range e.grid.Live() {
		bm.Add(uint64(y)*w + uint64(x))
	}
	return bm
}

// Population returns the number of live cells in the current generation.
func (e *Engine) Population() int { return e.grid.Population() }

// Cells unpacks the current generation into a rectangular boolean matrix.
func (e *Engine) Cells() [][]bool { return e.grid.Cells() }

// Stats returns a snapshot of configuration and last-step throughput.
func (e *Engine) Stats() Stats {
	return Stats{
		Width:       e.grid.Width(),
		Height:      e.grid.Height(),
		Boundary:    e.grid.Boundary(),
		Lanes:       e.profile.Lanes,
		Fallback:    e.profile.Fallback,
		Workers:     e.sched.Workers(),
		Generation:  e.sched.Generation(),
		CellsPerSec: e.sched.CellsPerSec(),
	}
}

// Close terminates the engine and releases the worker pool. Idempotent.
// The last completed generation remains readable after Close.
func (e *Engine) Close() error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}
	e.sched.Close()
	return nil
}
