package kernel

import (
	"os"
	"strconv"
)

// Package-level capability state, initialized once by the platform-specific
// init functions. Read-only afterwards.
var (
	// CPU feature flags (set by platform-specific init).
	hasASIMD    bool // ARM64 NEON
	hasSVE2     bool // ARM64 SVE2
	hasAVX2     bool // x86-64 AVX2
	hasAVX512F  bool // x86-64 AVX-512 Foundation
	hasAVX512BW bool // x86-64 AVX-512 Byte/Word

	// availableLanes are the widths worth calibrating on this CPU, scalar
	// first. Empty means the platform init never ran (unknown arch), which
	// reads as scalar-only.
	availableLanes []int

	// forcedLanes is the GOLIFE_LANES override, 0 when unset or invalid.
	forcedLanes int
)

// initCapabilities is called from the platform-specific init functions
// after the CPU feature flags are populated.
func initCapabilities() {
	availableLanes = []int{1}

	switch {
	case hasAVX512F && hasAVX512BW:
		availableLanes = append(availableLanes, 4, 8, 16)
	case hasAVX2:
		availableLanes = append(availableLanes, 4, 8)
	case hasSVE2:
		availableLanes = append(availableLanes, 4, 8, 16)
	case hasASIMD:
		availableLanes = append(availableLanes, 4)
	}

	if v := os.Getenv("GOLIFE_LANES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			if _, ok := stepRowKernels[n]; ok {
				forcedLanes = n
			}
		}
	}
}

// AvailableLanes returns the lane widths the calibration pass will measure
// on this CPU. Scalar is always first. The returned slice must not be
// mutated.
func AvailableLanes() []int {
	if len(availableLanes) == 0 {
		return []int{1}
	}
	return availableLanes
}

// ForcedLanes reports the GOLIFE_LANES environment override, if a valid
// one was set.
func ForcedLanes() (int, bool) {
	return forcedLanes, forcedLanes != 0
}
