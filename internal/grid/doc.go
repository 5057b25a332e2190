// Package grid provides bit-packed, double-buffered cell storage for the
// stepping engine.
//
// Layout:
//   - 64 cells per uint64 word, LSB-first within a word
//   - one ghost word on each side of every row
//   - one ghost row above and one below the logical grid
//
// Ghost cells let the neighbor kernels shift blindly across row and word
// boundaries without per-cell bounds checks. The ghost region is recomputed
// once per generation according to the boundary policy; interior bits are
// only ever written by the step scheduler into the back buffer.
package grid
