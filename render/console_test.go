package render

import (
	"bytes"
	"context"
	"iter"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a fixed 3x2 board with two live cells.
type fakeSource struct {
	generation uint64
}

func (f *fakeSource) Width() int         { return 3 }
func (f *fakeSource) Height() int        { return 2 }
func (f *fakeSource) Generation() uint64 { return f.generation }
func (f *fakeSource) Population() int    { return 2 }

func (f *fakeSource) Live() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if !yield(1, 0) {
			return
		}
		yield(2, 1)
	}
}

func TestConsoleDraw(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, WithGlyphs('#', '.'))

	require.NoError(t, c.Draw(&fakeSource{generation: 7}))
	require.NoError(t, c.Close())

	out := buf.String()
	assert.Contains(t, out, "generation 7  population 2  3x2")
	assert.Contains(t, out, ".#.\r\n")
	assert.Contains(t, out, "..#\r\n")
	assert.Contains(t, out, escCursorHome)
	assert.NotContains(t, out, escEnterAltScreen)
}

func TestConsoleDefaultGlyphs(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	require.NoError(t, c.Draw(&fakeSource{}))
	assert.Contains(t, buf.String(), "█")
}

func TestConsoleAltScreen(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, WithAltScreen())

	require.NoError(t, c.Draw(&fakeSource{}))
	require.NoError(t, c.Close())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, escEnterAltScreen))
	assert.Contains(t, out, escHideCursor)
	assert.Contains(t, out, escShowCursor)
	assert.True(t, strings.HasSuffix(out, escLeaveAltScreen))
}

func TestConsoleFrameBufferReset(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, WithGlyphs('#', '.'))

	require.NoError(t, c.Draw(&fakeSource{}))
	buf.Reset()

	// Second draw of the same source must render identical cells, not
	// accumulate stale live bits.
	require.NoError(t, c.Draw(&fakeSource{generation: 1}))
	out := buf.String()
	assert.Contains(t, out, ".#.\r\n")
	assert.Contains(t, out, "..#\r\n")
	assert.Equal(t, 2, strings.Count(out, "#"), "exactly the live cells, no stale bits")
}

func TestFrameLimiterUnlimited(t *testing.T) {
	fl := NewFrameLimiter(0)

	start := time.Now()
	for i := 0; i < 10; i++ {
		require.NoError(t, fl.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestFrameLimiterPaces(t *testing.T) {
	fl := NewFrameLimiter(20 * time.Millisecond)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, fl.Wait(context.Background()))
	}
	// First token is free; the next two are paced.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestFrameLimiterCancelled(t *testing.T) {
	fl := NewFrameLimiter(time.Hour)
	require.NoError(t, fl.Wait(context.Background()), "first token is immediate")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, fl.Wait(ctx))
}
