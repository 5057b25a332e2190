package kernel

// Planes holds the neighbor count of all 64 cells of one word, encoded as
// four bit-planes. For bit position b the count is
//
//	count(b) = Ones(b) + 2*TwosA(b) + 2*TwosB(b) + 4*Fours(b)
//
// which spans the full 0-8 range. The planes are the raw outputs of the
// adder cascade; they are consumed immediately by rule application and
// never persisted.
type Planes struct {
	Ones  uint64
	TwosA uint64
	TwosB uint64
	Fours uint64
}

// Count decodes the neighbor count at bit position b. Test and debugging
// helper; the kernels never decode counts per cell.
func (p Planes) Count(b uint) int {
	return int(p.Ones>>b&1) + 2*int(p.TwosA>>b&1) + 2*int(p.TwosB>>b&1) + 4*int(p.Fours>>b&1)
}

// CountWord sums the eight neighbor direction masks with a cascade of half
// and full adders (XOR/AND pairs and 3-input XOR/majority), producing the
// count bit-planes for all 64 positions at once. Exact binary addition,
// no per-cell loop.
func CountWord(nw, n, ne, w, e, sw, s, se uint64) Planes {
	// Stage 0: three independent adds of the eight inputs.
	t0 := nw ^ n
	a0 := t0 ^ ne
	c0 := (nw & n) | (t0 & ne)

	t1 := w ^ e
	a1 := t1 ^ sw
	c1 := (w & e) | (t1 & sw)

	a2 := s ^ se
	c2 := s & se

	// Stage 1: combine the partial sums and carries.
	t2 := a0 ^ a1
	ones := t2 ^ a2
	twosA := (a0 & a1) | (t2 & a2)

	t3 := c0 ^ c1
	twosB := t3 ^ c2
	fours := (c0 & c1) | (t3 & c2)

	return Planes{Ones: ones, TwosA: twosA, TwosB: twosB, Fours: fours}
}

// NextWord applies the Conway rule to one word: a cell is alive in the next
// generation iff its count is 3, or its count is 2 and it is alive now.
// Derivation: (center|Ones) injects the low count bit or current state,
// (TwosA^TwosB) demands exactly one weight-2 partial, and &^Fours rejects
// counts of four and above.
func NextWord(center uint64, p Planes) uint64 {
	return (center | p.Ones) & (p.TwosA ^ p.TwosB) &^ p.Fours
}
