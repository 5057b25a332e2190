package pattern

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadRLEHeader is returned when the RLE header line cannot be parsed.
type ErrBadRLEHeader struct {
	Line string
}

func (e *ErrBadRLEHeader) Error() string {
	return fmt.Sprintf("malformed rle header %q", e.Line)
}

// ErrRLEOverflow is returned when the run data exceeds the dimensions
// declared in the header.
type ErrRLEOverflow struct {
	X, Y int
}

func (e *ErrRLEOverflow) Error() string {
	return fmt.Sprintf("rle data overflows declared bounds at (%d, %d)", e.X, e.Y)
}

var rleHeaderRe = regexp.MustCompile(`^x\s*=\s*(\d+)\s*,\s*y\s*=\s*(\d+)`)

// isRLE reports whether data looks like the RLE format: the first
// non-comment line is an "x = m, y = n" header.
func isRLE(data []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return rleHeaderRe.MatchString(line)
	}
	return false
}

// parseRLE parses the run-length-encoded format: '#' comment lines, an
// "x = m, y = n" header, then runs of 'b' (dead), 'o' (alive), '$'
// (end of row) terminated by '!'.
func parseRLE(name string, data []byte) (*Pattern, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))

	var width, height int
	var body strings.Builder

	inBody := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !inBody {
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			m := rleHeaderRe.FindStringSubmatch(line)
			if m == nil {
				return nil, &ErrBadRLEHeader{Line: line}
			}
			width, _ = strconv.Atoi(m[1])
			height, _ = strconv.Atoi(m[2])
			inBody = true
			continue
		}
		body.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !inBody || width == 0 || height == 0 {
		return nil, &ErrEmptyPattern{}
	}

	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}

	x, y := 0, 0
	run := 0
	for _, ch := range body.String() {
		switch {
		case ch >= '0' && ch <= '9':
			run = run*10 + int(ch-'0')
		case ch == 'b' || ch == 'o':
			n := max(run, 1)
			if x+n > width || y >= height {
				return nil, &ErrRLEOverflow{X: x, Y: y}
			}
			if ch == 'o' {
				for j := range n {
					cells[y][x+j] = true
				}
			}
			x += n
			run = 0
		case ch == '$':
			n := max(run, 1)
			y += n
			x = 0
			run = 0
			if y > height {
				return nil, &ErrRLEOverflow{X: x, Y: y}
			}
		case ch == '!':
			return &Pattern{Name: name, Cells: cells}, nil
		case ch == ' ' || ch == '\t':
			// permissive: some writers pad runs with whitespace
		default:
			return nil, &ErrBadCharacter{Line: 0, Char: ch}
		}
	}

	// Missing '!' terminator is tolerated when the data is complete.
	return &Pattern{Name: name, Cells: cells}, nil
}
