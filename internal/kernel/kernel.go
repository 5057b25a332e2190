package kernel

// StepRowFunc advances one grid row by a generation. dst, up, mid and down
// are full padded rows (ghost word at each end); masks holds the per-word
// validity masks with the same layout. The function writes the data words
// of dst (positions 1..len-2) and never touches the ghost words.
//
// All registered widths compute the identical bit arithmetic; only the
// batching differs.
type StepRowFunc func(dst, up, mid, down, masks []uint64)

// stepRowKernels is the dispatch registry, keyed by lane width.
var stepRowKernels = map[int]StepRowFunc{
	1:  stepRow1,
	4:  stepRow4,
	8:  stepRow8,
	16: stepRow16,
}

// ForLanes returns the row kernel for the given lane width. Every width in
// {1, 4, 8, 16} is registered on every platform; capability detection only
// decides which widths are worth calibrating.
func ForLanes(lanes int) (StepRowFunc, bool) {
	fn, ok := stepRowKernels[lanes]
	return fn, ok
}

// RegisteredLanes returns the lane widths with a registered kernel.
func RegisteredLanes() []int {
	return []int{1, 4, 8, 16}
}

// stepWord computes the next-generation word at position w. The horizontal
// shifts carry the boundary bit of the adjacent word; the vertical inputs
// come from the already materialized neighbor rows (or their ghost
// substitutes).
func stepWord(up, mid, down []uint64, w int, mask uint64) uint64 {
	u, c, d := up[w], mid[w], down[w]

	nw := u<<1 | up[w-1]>>63
	ne := u>>1 | (up[w+1]&1)<<63
	wm := c<<1 | mid[w-1]>>63
	em := c>>1 | (mid[w+1]&1)<<63
	sw := d<<1 | down[w-1]>>63
	se := d>>1 | (down[w+1]&1)<<63

	return NextWord(c, CountWord(nw, u, ne, wm, em, sw, d, se)) & mask
}

// stepRow1 is the scalar path: one word per iteration.
func stepRow1(dst, up, mid, down, masks []uint64) {
	last := len(dst) - 2
	for w := 1; w <= last; w++ {
		dst[w] = stepWord(up, mid, down, w, masks[w])
	}
}

func stepRow4(dst, up, mid, down, masks []uint64)  { stepRowBatch(dst, up, mid, down, masks, 4) }
func stepRow8(dst, up, mid, down, masks []uint64)  { stepRowBatch(dst, up, mid, down, masks, 8) }
func stepRow16(dst, up, mid, down, masks []uint64) { stepRowBatch(dst, up, mid, down, masks, 16) }

// stepRowBatch processes l consecutive words per iteration. The inner loops
// have a constant trip count per call site, giving the compiler
// straight-line code over contiguous words to auto-vectorize. Word-edge
// carries inside a batch resolve lane-to-lane; the carries at the batch
// edges come from memory, exactly as in the scalar path. Remainder words
// (row length not divisible by l) go through the scalar path, so results
// are bit-identical whichever path handles a word.
func stepRowBatch(dst, up, mid, down, masks []uint64, l int) {
	last := len(dst) - 2
	w := 1
	for ; w+l-1 <= last; w += l {
		for j := 0; j < l; j++ {
			dst[w+j] = stepWord(up, mid, down, w+j, masks[w+j])
		}
	}
	for ; w <= last; w++ {
		dst[w] = stepWord(up, mid, down, w, masks[w])
	}
}
