package render

import (
	"bufio"
	"fmt"
	"io"
	"iter"
)

// Source is the read-only view of a simulation the renderer needs.
type Source interface {
	Width() int
	Height() int
	Generation() uint64
	Population() int
	Live() iter.Seq2[int, int]
}

// ANSI control sequences used by the console renderer.
const (
	escEnterAltScreen = "\x1b[?1049h"
	escLeaveAltScreen = "\x1b[?1049l"
	escHideCursor     = "\x1b[?25l"
	escShowCursor     = "\x1b[?25h"
	escCursorHome     = "\x1b[H"
	escClearScreen    = "\x1b[2J"
)

// ConsoleOptions configures a Console renderer.
type ConsoleOptions struct {
	// AliveGlyph is drawn for a live cell. Defaults to '█'.
	AliveGlyph rune

	// DeadGlyph is drawn for a dead cell. Defaults to ' '.
	DeadGlyph rune

	// AltScreen switches the terminal to the alternate screen buffer
	// for the lifetime of the renderer.
	AltScreen bool
}

// Console renders a Source to a terminal writer, redrawing in place.
type Console struct {
	w     *bufio.Writer
	opts  ConsoleOptions
	frame []byte
}

// NewConsole creates a Console renderer writing to w.
func NewConsole(w io.Writer, optFns ...func(o *ConsoleOptions)) *Console {
	opts := ConsoleOptions{
		AliveGlyph: '█',
		DeadGlyph:  ' ',
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	c := &Console{
		w:    bufio.NewWriterSize(w, 64*1024),
		opts: opts,
	}
	if opts.AltScreen {
		fmt.Fprint(c.w, escEnterAltScreen, escHideCursor, escClearScreen)
		c.w.Flush()
	}
	return c
}

// WithAltScreen enables the alternate terminal screen buffer.
func WithAltScreen() func(o *ConsoleOptions) {
	return func(o *ConsoleOptions) {
		o.AltScreen = true
	}
}

// WithGlyphs sets the glyphs used for live and dead cells.
func WithGlyphs(alive, dead rune) func(o *ConsoleOptions) {
	return func(o *ConsoleOptions) {
		o.AliveGlyph = alive
		o.DeadGlyph = dead
	}
}

// Draw renders one frame: a status header followed by the grid.
func (c *Console) Draw(src Source) error {
	width, height := src.Width(), src.Height()

	// Dense frame buffer reused across draws.
	need := width * height
	if cap(c.frame) < need {
		c.frame = make([]byte, need)
	}
	c.frame = c.frame[:need]
	for i := range c.frame {
		c.frame[i] = 0
	}
	for x, y := range src.Live() {
		c.frame[y*width+x] = 1
	}

	fmt.Fprint(c.w, escCursorHome)
	fmt.Fprintf(c.w, "generation %d  population %d  %dx%d\r\n",
		src.Generation(), src.Population(), width, height)

	for y := range height {
		row := c.frame[y*width : (y+1)*width]
		for _, alive := range row {
			if alive != 0 {
				c.w.WriteRune(c.opts.AliveGlyph)
			} else {
				c.w.WriteRune(c.opts.DeadGlyph)
			}
		}
		c.w.WriteString("\r\n")
	}

	return c.w.Flush()
}

// Close restores the terminal state. Safe to call once after use.
func (c *Console) Close() error {
	if c.opts.AltScreen {
		fmt.Fprint(c.w, escShowCursor, escLeaveAltScreen)
	}
	return c.w.Flush()
}
