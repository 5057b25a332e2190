package testutil

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/hupe1980/golife/internal/grid"
)

// RNG encapsulates a seeded random number generator. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bool returns true with probability p.
func (r *RNG) Bool(p float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64() < p
}

// Cells generates a width x height boolean matrix where each cell is alive
// with probability density.
func (r *RNG) Cells(width, height int, density float64) [][]bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	cells := make([][]bool, height)
	for y := range cells {
		row := make([]bool, width)
		for x := range row {
			row[x] = r.rand.Float64() < density
		}
		cells[y] = row
	}
	return cells
}

// ParseCells converts pattern lines to a boolean matrix. '#', 'O' and '*'
// are alive, everything else is dead. Lines must have equal length.
func ParseCells(lines []string) [][]bool {
	cells := make([][]bool, len(lines))
	for y, line := range lines {
		row := make([]bool, len(line))
		for x, ch := range line {
			row[x] = ch == '#' || ch == 'O' || ch == '*'
		}
		cells[y] = row
	}
	return cells
}

// FormatCells renders a boolean matrix as '#'/'.' lines, for test failure
// output.
func FormatCells(cells [][]bool) string {
	var sb strings.Builder
	for _, row := range cells {
		for _, alive := range row {
			if alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellsEqual reports whether two boolean matrices are identical.
func CellsEqual(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

// StepCells advances a boolean matrix one generation with a naive
// cell-by-cell simulation of Conway's rule. The oracle for the packed
// engine: trivially correct, branchy and slow.
func StepCells(cells [][]bool, boundary grid.Boundary) [][]bool {
	height := len(cells)
	width := len(cells[0])

	next := make([][]bool, height)
	for y := range next {
		next[y] = make([]bool, width)
		for x := range next[y] {
			n := countNeighbors(cells, x, y, boundary)
			next[y][x] = n == 3 || (n == 2 && cells[y][x])
		}
	}
	return next
}

// RunCells advances a boolean matrix by steps generations.
func RunCells(cells [][]bool, boundary grid.Boundary, steps int) [][]bool {
	for range steps {
		cells = StepCells(cells, boundary)
	}
	return cells
}

func countNeighbors(cells [][]bool, x, y int, boundary grid.Boundary) int {
	height := len(cells)
	width := len(cells[0])

	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if boundary == grid.BoundaryWrap {
				nx = (nx + width) % width
				ny = (ny + height) % height
			} else if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			if cells[ny][nx] {
				count++
			}
		}
	}
	return count
}
