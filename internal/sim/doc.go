// Package sim drives generation transitions: it partitions grid rows across
// a fixed worker pool, fans one kernel task out per chunk, and commits the
// buffer swap only when every chunk succeeded.
//
// Chunk boundaries are a pure function of (height, worker count), chunk
// outputs are disjoint row ranges of the back buffer, and the current
// buffer is read-only while a step runs, so no locking is needed and
// results are reproducible regardless of completion order.
package sim
