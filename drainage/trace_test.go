package drainage_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/terrain/drainage"
	"github.com/katalvlaran/terrain/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nd = grid.DefaultNoData

func mustGrid(t testing.TB, vals [][]float64) *grid.Grid {
	g, err := grid.NewGrid(vals)
	require.NoError(t, err)
	return g
}

func pit(t testing.TB) *grid.Grid {
	vals := make([][]float64, 5)
	for y := range vals {
		vals[y] = []float64{10, 10, 10, 10, 10}
	}
	vals[2][2] = 0
	return mustGrid(t, vals)
}

// staircase returns elevation -(x+y) on an n×n grid.
func staircase(t testing.TB, n int) *grid.Grid {
	vals := make([]float64, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			vals[y*n+x] = -float64(x + y)
		}
	}
	g, err := grid.FromSlice(n, n, vals)
	require.NoError(t, err)
	return g
}

func cells(xy ...int) []drainage.Cell {
	out := make([]drainage.Cell, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, drainage.Cell{X: xy[i], Y: xy[i+1]})
	}
	return out
}

// TestTrace_Errors verifies validation sentinels.
func TestTrace_Errors(t *testing.T) {
	g := pit(t)

	_, err := drainage.Trace(nil, drainage.Point{X: 1, Y: 1})
	assert.ErrorIs(t, err, drainage.ErrNilGrid)

	for _, p := range []drainage.Point{{X: -0.5, Y: 1}, {X: 5, Y: 0}, {X: 1, Y: 5.2}, {X: math.NaN(), Y: 1}} {
		_, err = drainage.Trace(g, p)
		assert.ErrorIs(t, err, drainage.ErrSeedOutOfRange, "seed %+v", p)
	}

	_, err = drainage.Trace(g, drainage.Point{X: 1, Y: 1}, drainage.WithMaxSteps(-1))
	assert.ErrorIs(t, err, drainage.ErrBadMaxSteps)

	_, err = drainage.Trace(g, drainage.Point{X: 1, Y: 1}, drainage.WithWorkers(0))
	assert.ErrorIs(t, err, drainage.ErrBadWorkers)
}

// TestTrace_Pit follows (1,1) → (2,2) and stops in the pit.
func TestTrace_Pit(t *testing.T) {
	p, err := drainage.Trace(pit(t), drainage.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, drainage.Cell{X: 1, Y: 1}, p.Seed)
	assert.Equal(t, cells(1, 1, 2, 2), p.Cells)
	assert.Equal(t, drainage.StopLocalMinimum, p.Stop)
}

// TestTrace_LocalMinimumSeed marks only the seed and stops.
func TestTrace_LocalMinimumSeed(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{3, 2, 3},
		{2, 1, 2},
		{3, 2, 1},
	})
	p, err := drainage.Trace(g, drainage.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, cells(1, 1), p.Cells)
	assert.Equal(t, drainage.StopLocalMinimum, p.Stop, "equal neighbour is not lower")
}

// TestTrace_Flat halts immediately on a flat neighbourhood.
func TestTrace_Flat(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{7, 7, 7, 7},
		{7, 7, 7, 7},
		{7, 7, 7, 7},
	})
	p, err := drainage.Trace(g, drainage.Point{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, cells(2, 1), p.Cells)
	assert.Equal(t, drainage.StopLocalMinimum, p.Stop)
}

// TestTrace_Staircase follows the diagonal of steepest descent to the border.
func TestTrace_Staircase(t *testing.T) {
	g := staircase(t, 6)
	p, err := drainage.Trace(g, drainage.Point{X: 1.9, Y: 1.1})
	require.NoError(t, err)
	assert.Equal(t, cells(1, 1, 2, 2, 3, 3, 4, 4, 5, 5), p.Cells)
	assert.Equal(t, drainage.StopEdge, p.Stop)

	prev := math.Inf(1)
	for _, c := range p.Cells {
		v, err := g.At(c.X, c.Y)
		require.NoError(t, err)
		assert.Less(t, v, prev, "strict descent at %+v", c)
		prev = v
	}
}

// TestTrace_TieBreak picks the lowest kernel index among equal minima.
func TestTrace_TieBreak(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{9, 9, 9, 9},
		{9, 5, 1, 9},
		{9, 1, 9, 9},
		{9, 9, 9, 9},
	})
	p, err := drainage.Trace(g, drainage.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, drainage.Cell{X: 2, Y: 1}, p.Cells[1], "index 5 precedes index 7")
}

// TestTrace_SkipsNoData ignores nodata neighbours even though the sentinel
// is numerically the lowest value.
func TestTrace_SkipsNoData(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{nd, 9, 9, 9},
		{9, 5, 9, 9},
		{9, 9, 4, 9},
		{9, 9, 9, 9},
	})
	p, err := drainage.Trace(g, drainage.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, cells(1, 1, 2, 2), p.Cells)
	assert.Equal(t, drainage.StopLocalMinimum, p.Stop)
}

// TestTrace_AllNoData stops when no neighbour is usable.
func TestTrace_AllNoData(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{nd, nd, nd},
		{nd, 3, nd},
		{nd, nd, nd},
	})
	p, err := drainage.Trace(g, drainage.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, cells(1, 1), p.Cells)
	assert.Equal(t, drainage.StopNoData, p.Stop)
}

// TestTrace_NoDataSeed leaves a nodata seed toward its lowest neighbour.
func TestTrace_NoDataSeed(t *testing.T) {
	g := mustGrid(t, [][]float64{
		{9, 9, 9, 9},
		{9, nd, 8, 9},
		{9, 9, 9, 9},
	})
	p, err := drainage.Trace(g, drainage.Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, cells(1, 1, 2, 1), p.Cells)
	assert.Equal(t, drainage.StopLocalMinimum, p.Stop)
}

// TestTrace_BorderSeed stops at once on the grid border.
func TestTrace_BorderSeed(t *testing.T) {
	p, err := drainage.Trace(staircase(t, 4), drainage.Point{X: 0, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, cells(0, 2), p.Cells)
	assert.Equal(t, drainage.StopEdge, p.Stop)
}

// TestTrace_MaxSteps caps the walk.
func TestTrace_MaxSteps(t *testing.T) {
	p, err := drainage.Trace(staircase(t, 8), drainage.Point{X: 1, Y: 1}, drainage.WithMaxSteps(2))
	require.NoError(t, err)
	assert.Equal(t, cells(1, 1, 2, 2, 3, 3), p.Cells)
	assert.Equal(t, drainage.StopMaxSteps, p.Stop)
}

// TestPointCell checks truncation toward negative infinity.
func TestPointCell(t *testing.T) {
	assert.Equal(t, drainage.Cell{X: 2, Y: 1}, drainage.Point{X: 2.7, Y: 1.2}.Cell())
	assert.Equal(t, drainage.Cell{X: -1, Y: 0}, drainage.Point{X: -0.1, Y: 0.99}.Cell())
}

// TestStopString covers the reason names.
func TestStopString(t *testing.T) {
	assert.Equal(t, "local-minimum", drainage.StopLocalMinimum.String())
	assert.Equal(t, "edge", drainage.StopEdge.String())
	assert.Equal(t, "nodata", drainage.StopNoData.String())
	assert.Equal(t, "max-steps", drainage.StopMaxSteps.String())
	assert.Equal(t, "stop(9)", drainage.Stop(9).String())
}
