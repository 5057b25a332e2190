// Package golife simulates Conway's Game of Life over large boolean grids
// at very high throughput.
//
// Cell state is packed 64 cells per machine word and the update rule is
// evaluated with branch-free bitwise adder networks, batched across several
// words per iteration and parallelized across a fixed worker pool. A ghost
// border around the grid removes all per-cell boundary checks.
//
// # Quick Start
//
//	cells := [][]bool{
//	    {false, true, false},
//	    {false, true, false},
//	    {false, true, false},
//	}
//	engine, _ := golife.New(3, 3, cells)
//	defer engine.Close()
//
//	_ = engine.Step(context.Background())
//	for x, y := range engine.Live() {
//	    fmt.Println(x, y)
//	}
//
// Lane width is picked once per engine by a short calibration benchmark
// over the widths the CPU exposes; platforms without wide vector support
// fall back to the scalar path automatically. Results are bit-identical at
// every lane width and worker count.
//
// The boundary policy is configurable: a dead border (default) or toroidal
// wrap via WithBoundary(golife.BoundaryWrap).
package golife
