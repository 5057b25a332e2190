package grid

import (
	"fmt"
	"iter"
	"math/bits"
)

// WordBits is the number of cells packed into one storage word.
const WordBits = 64

// Boundary selects how cells outside the logical grid behave.
type Boundary uint8

const (
	// BoundaryDead treats everything outside the grid as permanently dead.
	BoundaryDead Boundary = iota
	// BoundaryWrap wraps the grid toroidally; ghost cells mirror the
	// opposite edge.
	BoundaryWrap
)

// String returns the string representation of a Boundary.
func (b Boundary) String() string {
	switch b {
	case BoundaryDead:
		return "dead"
	case BoundaryWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// ErrZeroDimension indicates a zero width or height at construction.
type ErrZeroDimension struct {
	Width  int
	Height int
}

func (e *ErrZeroDimension) Error() string {
	return fmt.Sprintf("grid dimensions must be positive: %dx%d", e.Width, e.Height)
}

// ErrRaggedRows indicates a non-rectangular initial cell matrix.
type ErrRaggedRows struct {
	Row  int
	Len  int
	Want int
}

func (e *ErrRaggedRows) Error() string {
	return fmt.Sprintf("row %d has length %d, expected %d", e.Row, e.Len, e.Want)
}

// ErrDimensionMismatch indicates that the initial cell matrix does not match
// the declared grid dimensions.
type ErrDimensionMismatch struct {
	WantWidth  int
	WantHeight int
	GotWidth   int
	GotHeight  int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("initial cells are %dx%d, grid is %dx%d",
		e.GotWidth, e.GotHeight, e.WantWidth, e.WantHeight)
}

// Grid is bit-packed, double-buffered cell storage with a ghost border.
//
// Rows are stored padded: padded row 0 and padded row height+1 are ghost
// rows, and word 0 and word wordsPerRow-1 of every row are ghost words.
// Cell (x, y) lives at bit x%64 of word 1+x/64 in padded row y+1.
type Grid struct {
	width    int
	height   int
	boundary Boundary

	dataWords   int // words carrying cell bits per row
	wordsPerRow int // dataWords + 2 ghost words

	cur  []uint64
	next []uint64

	// masks[w] has a bit set for every valid cell position in word w of a
	// row. Ghost words and padding bits past width are zero.
	masks []uint64
}

// New builds a packed grid from a rectangular boolean matrix.
//
// The matrix is re-validated here even when a collaborator already checked
// it: width and height must be positive, every row must have the same
// length, and the matrix dimensions must match width x height.
func New(width, height int, cells [][]bool, boundary Boundary) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &ErrZeroDimension{Width: width, Height: height}
	}
	if len(cells) != height {
		return nil, &ErrDimensionMismatch{
			WantWidth: width, WantHeight: height,
			GotWidth: rowLen(cells), GotHeight: len(cells),
		}
	}
	for i, row := range cells {
		if len(row) != len(cells[0]) {
			return nil, &ErrRaggedRows{Row: i, Len: len(row), Want: len(cells[0])}
		}
	}
	if len(cells[0]) != width {
		return nil, &ErrDimensionMismatch{
			WantWidth: width, WantHeight: height,
			GotWidth: len(cells[0]), GotHeight: len(cells),
		}
	}

	dataWords := (width + WordBits - 1) / WordBits
	wordsPerRow := dataWords + 2

	g := &Grid{
		width:       width,
		height:      height,
		boundary:    boundary,
		dataWords:   dataWords,
		wordsPerRow: wordsPerRow,
		cur:         make([]uint64, wordsPerRow*(height+2)),
		next:        make([]uint64, wordsPerRow*(height+2)),
		masks:       buildMasks(width, wordsPerRow),
	}

	for y, row := range cells {
		for x, alive := range row {
			if alive {
				g.Set(x, y, true)
			}
		}
	}
	g.RefreshGhosts()

	return g, nil
}

func rowLen(cells [][]bool) int {
	if len(cells) == 0 {
		return 0
	}
	return len(cells[0])
}

func buildMasks(width, wordsPerRow int) []uint64 {
	masks := make([]uint64, wordsPerRow)
	for w := 1; w < wordsPerRow-1; w++ {
		lo := (w - 1) * WordBits
		switch {
		case lo+WordBits <= width:
			masks[w] = ^uint64(0)
		case lo < width:
			masks[w] = (uint64(1) << uint(width-lo)) - 1
		}
	}
	return masks
}

// Width returns the logical grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the logical grid height in cells.
func (g *Grid) Height() int { return g.height }

// Boundary returns the configured boundary policy.
func (g *Grid) Boundary() Boundary { return g.boundary }

// DataWords returns the number of cell-carrying words per row.
func (g *Grid) DataWords() int { return g.dataWords }

// WordsPerRow returns the padded row stride in words.
func (g *Grid) WordsPerRow() int { return g.wordsPerRow }

// Masks returns the per-word validity masks shared by all rows.
// The returned slice must not be mutated.
func (g *Grid) Masks() []uint64 { return g.masks }

func (g *Grid) rowOff(padded int) int { return padded * g.wordsPerRow }

// CurRow returns padded row pr of the current buffer (pr 0 and height+1 are
// the ghost rows). The slice aliases grid storage.
func (g *Grid) CurRow(pr int) []uint64 {
	off := g.rowOff(pr)
	return g.cur[off : off+g.wordsPerRow]
}

// NextRow returns padded row pr of the back buffer.
func (g *Grid) NextRow(pr int) []uint64 {
	off := g.rowOff(pr)
	return g.next[off : off+g.wordsPerRow]
}

// Set writes one cell of the current buffer. Out-of-range coordinates are
// ignored. Intended for construction and tests; stepping never uses it.
func (g *Grid) Set(x, y int, alive bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	w := g.rowOff(y+1) + 1 + x/WordBits
	bit := uint64(1) << uint(x%WordBits)
	if alive {
		g.cur[w] |= bit
	} else {
		g.cur[w] &^= bit
	}
}

// Get reads one cell of the current buffer. Out-of-range coordinates read
// as dead.
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	w := g.rowOff(y+1) + 1 + x/WordBits
	return g.cur[w]>>(uint(x%WordBits))&1 != 0
}

// Population returns the number of live cells in the current generation.
func (g *Grid) Population() int {
	total := 0
	for y := 0; y < g.height; y++ {
		row := g.CurRow(y + 1)
		for w := 1; w <= g.dataWords; w++ {
			total += bits.OnesCount64(row[w] & g.masks[w])
		}
	}
	return total
}

// Live returns a lazy, restartable iterator over the live cell coordinates
// of the current generation, in row-major order.
func (g *Grid) Live() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := 0; y < g.height; y++ {
			row := g.CurRow(y + 1)
			for w := 1; w <= g.dataWords; w++ {
				word := row[w] & g.masks[w]
				for word != 0 {
					b := bits.TrailingZeros64(word)
					if !yield((w-1)*WordBits+b, y) {
						return
					}
					word &= word - 1
				}
			}
		}
	}
}

// Cells unpacks the current generation into a rectangular boolean matrix.
func (g *Grid) Cells() [][]bool {
	out := make([][]bool, g.height)
	for y := range out {
		out[y] = make([]bool, g.width)
	}
	for x, y := range g.Live() {
		out[y][x] = true
	}
	return out
}

// RefreshGhosts recomputes the ghost rows and ghost words of the current
// buffer from the boundary policy. It touches only the ghost region and,
// for wrap boundaries, the padding bits of the last data word.
//
// Must run before neighbor counting; the kernels read ghost words blindly.
func (g *Grid) RefreshGhosts() {
	switch g.boundary {
	case BoundaryWrap:
		g.refreshWrap()
	default:
		g.refreshDead()
	}
}

func (g *Grid) refreshDead() {
	clear(g.CurRow(0))
	clear(g.CurRow(g.height + 1))
	for y := 1; y <= g.height; y++ {
		row := g.CurRow(y)
		row[0] = 0
		row[g.dataWords+1] = 0
		row[g.dataWords] &= g.masks[g.dataWords]
	}
}

func (g *Grid) refreshWrap() {
	last := g.dataWords
	lastBit := uint((g.width - 1) % WordBits)

	for y := 1; y <= g.height; y++ {
		row := g.CurRow(y)
		row[0] = 0
		row[last+1] = 0
		row[last] &= g.masks[last]

		// West neighbor of column 0 is column width-1: expose it at bit 63
		// of the left ghost word, where the shift carry picks it up.
		if row[last]>>lastBit&1 != 0 {
			row[0] = 1 << (WordBits - 1)
		}

		// East neighbor of column width-1 is column 0. When the last data
		// word is partial the wrap bit lands in its padding; otherwise it
		// is bit 0 of the right ghost word.
		east := row[1] & 1
		if lastBit == WordBits-1 {
			row[last+1] = east
		} else {
			row[last] |= east << (lastBit + 1)
		}
	}

	// Ghost rows mirror the opposite edge, ghost words included, so the
	// diagonal shifts wrap through the corners for free.
	copy(g.CurRow(0), g.CurRow(g.height))
	copy(g.CurRow(g.height+1), g.CurRow(1))
}

// SwapBuffers exchanges the current and back buffers in O(1).
func (g *Grid) SwapBuffers() {
	g.cur, g.next = g.next, g.cur
}
