// Package testutil provides deterministic random grids and a naive
// cell-by-cell reference simulator used as the oracle for the packed
// engine's correctness tests and benchmarks.
package testutil
