// Package kernel implements the branch-free neighbor counting and rule
// application at the heart of the stepping engine.
//
// # Adder network
//
// For every 64-cell word the eight neighbor direction masks are built with
// single-bit shifts (the bit entering at a word edge is carried in from the
// adjacent word, never synthesized as zero) and summed with a cascade of
// half and full adders. The cascade yields four bit-planes that together
// encode, per bit position, the binary neighbor count 0-8. The Conway rule
// then reduces to one fixed boolean formula over the planes and the current
// state word.
//
// # Lane widths
//
// The same arithmetic is provided at batch widths 1 (scalar), 4, 8 and 16
// words per iteration, dispatched through a registry table. Wider batches
// give the compiler straight-line unrolled code to vectorize; any remainder
// words fall through to the scalar path, so results are bit-identical
// regardless of the width that processed a given word.
//
// Runtime CPU feature detection (golang.org/x/sys/cpu) decides which widths
// are worth measuring; Calibrate picks the fastest by micro-benchmark and
// falls back to scalar when no wide path is available.
package kernel
