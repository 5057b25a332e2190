package kernel

import (
	"time"
)

// Profile is the outcome of one-time lane-width calibration. It is computed
// once per engine instance, immutable afterwards, and shared read-only by
// all workers. Never a process-wide singleton: the engine holds it
// explicitly.
type Profile struct {
	// Lanes is the selected batch width (1 = scalar).
	Lanes int
	// Fallback is true when no wide path was available or calibration
	// failed, and the scalar path was selected by recovery rather than by
	// measurement. Non-fatal by design.
	Fallback bool
	// CellsPerSec holds the measured throughput per candidate width, for
	// logging and display only.
	CellsPerSec map[int]float64
}

// Calibration workload: enough rows and words that the batch loops
// dominate, small enough to finish in a few milliseconds per width.
const (
	calibRows  = 64
	calibWords = 32 // data words per row
	calibIters = 48
)

// sink defeats dead-code elimination in the calibration loop.
var sink uint64

// Calibrate micro-benchmarks the row kernel at every lane width the CPU
// exposes and returns the profile of the fastest one. It never fails: on
// any error, or when only the scalar path exists, it returns scalar with
// Fallback set so the caller can log the condition and carry on.
func Calibrate() Profile {
	candidates := AvailableLanes()

	p := Profile{
		Lanes:       1,
		Fallback:    len(candidates) <= 1,
		CellsPerSec: make(map[int]float64, len(candidates)),
	}

	rows := calibRowSet()
	best := 0.0
	for _, lanes := range candidates {
		fn, ok := ForLanes(lanes)
		if !ok {
			continue
		}
		cps, err := measure(fn, rows)
		if err != nil {
			p.Fallback = true
			continue
		}
		p.CellsPerSec[lanes] = cps
		if cps > best {
			best = cps
			p.Lanes = lanes
		}
	}

	if best == 0 {
		// Every measurement failed; scalar recovery.
		p.Lanes = 1
		p.Fallback = true
	}
	return p
}

// calibRowSet builds a deterministic synthetic workload: calibRows+2 padded
// rows filled from a fixed xorshift stream, plus an all-valid mask row and
// a destination row.
func calibRowSet() [][]uint64 {
	stride := calibWords + 2
	rows := make([][]uint64, calibRows+2)
	state := uint64(0x9E3779B97F4A7C15)
	for i := range rows {
		row := make([]uint64, stride)
		for w := 1; w <= calibWords; w++ {
			state ^= state << 13
			state ^= state >> 7
			state ^= state << 17
			row[w] = state
		}
		rows[i] = row
	}
	return rows
}

func measure(fn StepRowFunc, rows [][]uint64) (cps float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &calibrationPanic{value: r}
		}
	}()

	stride := calibWords + 2
	masks := make([]uint64, stride)
	for w := 1; w <= calibWords; w++ {
		masks[w] = ^uint64(0)
	}
	dst := make([]uint64, stride)

	start := time.Now()
	for range calibIters {
		for pr := 1; pr <= calibRows; pr++ {
			fn(dst, rows[pr-1], rows[pr], rows[pr+1], masks)
		}
		sink ^= dst[1]
	}
	elapsed := time.Since(start)
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}

	cells := float64(calibIters) * float64(calibRows) * float64(calibWords) * 64
	return cells / elapsed.Seconds(), nil
}

type calibrationPanic struct {
	value any
}

func (e *calibrationPanic) Error() string {
	return "calibration kernel panicked"
}
