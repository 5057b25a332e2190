package pattern

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Pattern is a parsed Life pattern. Cells is a dense row-major boolean
// grid; all rows have equal length.
type Pattern struct {
	Name  string
	Cells [][]bool
}

// Width returns the pattern width in cells.
func (p *Pattern) Width() int {
	if len(p.Cells) == 0 {
		return 0
	}
	return len(p.Cells[0])
}

// Height returns the pattern height in cells.
func (p *Pattern) Height() int {
	return len(p.Cells)
}

// Population returns the number of live cells.
func (p *Pattern) Population() int {
	n := 0
	for _, row := range p.Cells {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// ErrEmptyPattern is returned when the input contains no cell data.
type ErrEmptyPattern struct{}

func (e *ErrEmptyPattern) Error() string {
	return "pattern contains no cell rows"
}

// ErrBadCharacter is returned when a cell row contains an unknown glyph.
type ErrBadCharacter struct {
	Line int
	Char rune
}

func (e *ErrBadCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q on line %d", e.Char, e.Line)
}

var gzipMagic = []byte{0x1f, 0x8b}

// Parse reads a pattern from r, transparently decompressing gzip input.
// The format is chosen by sniffing the content: an RLE header selects the
// RLE parser, anything else is treated as plaintext.
func Parse(name string, r io.Reader) (*Pattern, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err == nil && bytes.Equal(magic, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		br = bufio.NewReader(zr)
	}

	data, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}

	if isRLE(data) {
		return parseRLE(name, data)
	}
	return parsePlaintext(name, data)
}

// ParseString parses a pattern from an uncompressed string.
func ParseString(name, s string) (*Pattern, error) {
	return Parse(name, strings.NewReader(s))
}

// parsePlaintext parses the .cells format: '!' starts a comment line,
// '.' is a dead cell, 'O', '*' and '#' are live cells. Short rows are
// padded to the widest row.
func parsePlaintext(name string, data []byte) (*Pattern, error) {
	var (
		rows  [][]bool
		width int
	)

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		if line == "" && len(rows) == 0 {
			continue
		}

		row := make([]bool, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '.', ' ':
				row = append(row, false)
			case 'O', 'o', '*', '#':
				row = append(row, true)
			default:
				return nil, &ErrBadCharacter{Line: lineNo, Char: ch}
			}
		}
		rows = append(rows, row)
		if len(row) > width {
			width = len(row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	// Drop trailing blank rows left by trailing newlines.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || width == 0 {
		return nil, &ErrEmptyPattern{}
	}

	for i, row := range rows {
		if len(row) < width {
			padded := make([]bool, width)
			copy(padded, row)
			rows[i] = padded
		}
	}

	return &Pattern{Name: name, Cells: rows}, nil
}

// Place copies the pattern into a width x height cell grid with its top
// left corner at (x, y). Cells falling outside the grid are dropped.
func (p *Pattern) Place(width, height, x, y int) [][]bool {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	for dy, row := range p.Cells {
		for dx, alive := range row {
			tx, ty := x+dx, y+dy
			if alive && tx >= 0 && tx < width && ty >= 0 && ty < height {
				cells[ty][tx] = true
			}
		}
	}
	return cells
}

// Center copies the pattern into a width x height cell grid, centered.
func (p *Pattern) Center(width, height int) [][]bool {
	return p.Place(width, height, (width-p.Width())/2, (height-p.Height())/2)
}
