package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableLanes(t *testing.T) {
	lanes := AvailableLanes()
	require.NotEmpty(t, lanes)
	assert.Equal(t, 1, lanes[0], "scalar is always first")

	for _, l := range lanes {
		_, ok := ForLanes(l)
		assert.True(t, ok, "available width %d must have a kernel", l)
	}
}

func TestForcedLanes(t *testing.T) {
	// Read at init from GOLIFE_LANES; the test asserts consistency, not a
	// particular value.
	forced, ok := ForcedLanes()
	if !ok {
		assert.Zero(t, forced)
		return
	}
	_, registered := ForLanes(forced)
	assert.True(t, registered, "a forced width is always a registered one")
}
