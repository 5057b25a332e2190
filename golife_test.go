package golife_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	golife "github.com/hupe1980/golife"
	"github.com/hupe1980/golife/testutil"
)

func TestNewConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		cells  [][]bool
	}{
		{name: "zero width", width: 0, height: 2, cells: [][]bool{{}, {}}},
		{name: "zero height", width: 2, height: 0, cells: [][]bool{}},
		{name: "ragged rows", width: 2, height: 2, cells: [][]bool{{false, false}, {false}}},
		{name: "dimension mismatch", width: 3, height: 2, cells: [][]bool{{false, false}, {false, false}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := golife.New(tt.width, tt.height, tt.cells)
			require.ErrorIs(t, err, golife.ErrConfiguration)
		})
	}
}

func TestPondIsStill(t *testing.T) {
	pond := testutil.ParseCells([]string{
		".##.",
		"#..#",
		"#..#",
		".##.",
	})

	e, err := golife.New(4, 4, pond)
	require.NoError(t, err)
	defer e.Close()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, e.Step(ctx))
		assert.True(t, testutil.CellsEqual(pond, e.Cells()),
			"generation %d:\n%s", i+1, testutil.FormatCells(e.Cells()))
	}
	assert.Equal(t, 8, e.Population())
}

func TestBlinkerOscillates(t *testing.T) {
	horizontal := testutil.ParseCells([]string{
		".....",
		".....",
		".###.",
		".....",
		".....",
	})
	vertical := testutil.ParseCells([]string{
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	})

	e, err := golife.New(5, 5, horizontal)
	require.NoError(t, err)
	defer e.Close()

	ctx := context.Background()
	require.NoError(t, e.Step(ctx))
	assert.True(t, testutil.CellsEqual(vertical, e.Cells()))
	require.NoError(t, e.Step(ctx))
	assert.True(t, testutil.CellsEqual(horizontal, e.Cells()))
}

func TestGliderTranslates(t *testing.T) {
	glider := func(ox, oy int) [][]bool {
		cells := make([][]bool, 8)
		for y := range cells {
			cells[y] = make([]bool, 8)
		}
		for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
			cells[oy+p[1]][ox+p[0]] = true
		}
		return cells
	}

	e, err := golife.New(8, 8, glider(1, 1))
	require.NoError(t, err)
	defer e.Close()

	// A glider advances one cell diagonally every four generations.
	require.NoError(t, e.Run(context.Background(), 4))
	assert.True(t, testutil.CellsEqual(glider(2, 2), e.Cells()),
		"got:\n%s", testutil.FormatCells(e.Cells()))
	assert.Equal(t, uint64(4), e.Generation())
}

func TestGliderWrapsAround(t *testing.T) {
	glider := testutil.ParseCells([]string{
		"........",
		".#......",
		"..#.....",
		"###.....",
		"........",
		"........",
		"........",
		"........",
	})

	e, err := golife.New(8, 8, glider, golife.WithBoundary(golife.BoundaryWrap))
	require.NoError(t, err)
	defer e.Close()

	// 32 generations move the glider by (8, 8), a full lap on an 8x8 torus.
	require.NoError(t, e.Run(context.Background(), 32))
	assert.True(t, testutil.CellsEqual(glider, e.Cells()),
		"got:\n%s", testutil.FormatCells(e.Cells()))
}

func TestMatchesNaiveAcrossWidths(t *testing.T) {
	rng := testutil.NewRNG(2024)

	for _, width := range []int{63, 64, 65, 128, 129} {
		for _, boundary := range []golife.Boundary{golife.BoundaryDead, golife.BoundaryWrap} {
			cells := rng.Cells(width, 20, 0.35)

			e, err := golife.New(width, 20, cells, golife.WithBoundary(boundary))
			require.NoError(t, err)

			want := testutil.RunCells(cells, boundary, 3)
			require.NoError(t, e.Run(context.Background(), 3))

			assert.True(t, testutil.CellsEqual(want, e.Cells()),
				"width=%d boundary=%s", width, boundary)
			e.Close()
		}
	}
}

func TestLaneWidthDeterminism(t *testing.T) {
	cells := testutil.NewRNG(17).Cells(200, 50, 0.4)

	var baseline [][]bool
	for _, lanes := range []int{1, 4, 8, 16} {
		e, err := golife.New(200, 50, cells, golife.WithLanes(lanes), golife.WithWorkers(4))
		require.NoError(t, err)

		require.NoError(t, e.Run(context.Background(), 5))

		if baseline == nil {
			baseline = e.Cells()
		} else {
			assert.True(t, testutil.CellsEqual(baseline, e.Cells()), "lanes=%d", lanes)
		}

		assert.Equal(t, lanes, e.Stats().Lanes)
		e.Close()
	}
}

func TestInvalidLanesFallsBackToScalar(t *testing.T) {
	e, err := golife.New(8, 8, testutil.NewRNG(1).Cells(8, 8, 0.5), golife.WithLanes(5))
	require.NoError(t, err)
	defer e.Close()

	stats := e.Stats()
	assert.Equal(t, 1, stats.Lanes)
	assert.True(t, stats.Fallback)
	require.NoError(t, e.Step(context.Background()))
}

func TestLiveCellsBitmap(t *testing.T) {
	cells := testutil.ParseCells([]string{
		"#..",
		".#.",
		"..#",
	})
	e, err := golife.New(3, 3, cells)
	require.NoError(t, err)
	defer e.Close()

	bm := e.LiveCells()
	assert.Equal(t, uint64(3), bm.GetCardinality())
	assert.True(t, bm.Contains(0))
	assert.True(t, bm.Contains(4))
	assert.True(t, bm.Contains(8))
	assert.False(t, bm.Contains(1))
}

func TestAccessors(t *testing.T) {
	cells := testutil.NewRNG(3).Cells(12, 7, 0.5)
	e, err := golife.New(12, 7, cells, golife.WithBoundary(golife.BoundaryWrap), golife.WithWorkers(2))
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, 12, e.Width())
	assert.Equal(t, 7, e.Height())
	assert.Equal(t, golife.BoundaryWrap, e.Boundary())
	assert.Equal(t, uint64(0), e.Generation())
	assert.Equal(t, cells[0][0], e.Get(0, 0))
	assert.False(t, e.Get(-1, 0))

	stats := e.Stats()
	assert.Equal(t, 12, stats.Width)
	assert.Equal(t, 7, stats.Height)
	assert.Equal(t, 2, stats.Workers)
	assert.GreaterOrEqual(t, stats.Lanes, 1)
}

func TestStepAfterClose(t *testing.T) {
	e, err := golife.New(8, 8, testutil.NewRNG(4).Cells(8, 8, 0.5))
	require.NoError(t, err)

	require.NoError(t, e.Close())
	assert.ErrorIs(t, e.Step(context.Background()), golife.ErrTerminated)
	require.NoError(t, e.Close(), "close is idempotent")
}

func TestLastGenerationReadableAfterClose(t *testing.T) {
	e, err := golife.New(5, 5, testutil.ParseCells([]string{
		".....",
		".....",
		".###.",
		".....",
		".....",
	}))
	require.NoError(t, err)

	require.NoError(t, e.Step(context.Background()))
	want := e.Cells()
	require.NoError(t, e.Close())

	assert.True(t, testutil.CellsEqual(want, e.Cells()))
	assert.Equal(t, 3, e.Population())
}

func TestMetricsCollection(t *testing.T) {
	mc := &golife.BasicMetricsCollector{}

	e, err := golife.New(10, 10, testutil.NewRNG(5).Cells(10, 10, 0.5),
		golife.WithMetricsCollector(mc))
	require.NoError(t, err)
	defer e.Close()

	require.NoError(t, e.Run(context.Background(), 4))

	stats := mc.GetStats()
	assert.Equal(t, int64(4), stats.StepCount)
	assert.Equal(t, int64(0), stats.StepErrors)
	assert.Equal(t, int64(400), stats.CellsProcessed)
	assert.GreaterOrEqual(t, stats.Lanes, 1)
}
