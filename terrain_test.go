package terrain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrain"
	"github.com/katalvlaran/terrain/derive"
	"github.com/katalvlaran/terrain/drainage"
	"github.com/katalvlaran/terrain/grid"
	"github.com/katalvlaran/terrain/raster"
)

func pitGrid(t *testing.T) *grid.Grid {
	t.Helper()
	rows := make([][]float64, 5)
	for y := range rows {
		rows[y] = []float64{10, 10, 10, 10, 10}
	}
	rows[2][2] = 0
	g, err := grid.NewGrid(rows)
	require.NoError(t, err)
	return g
}

func flatGrid(t *testing.T, w, h int) *grid.Grid {
	t.Helper()
	samples := make([]float64, w*h)
	for i := range samples {
		samples[i] = 3
	}
	g, err := grid.FromSlice(w, h, samples)
	require.NoError(t, err)
	return g
}

func memSink(t *testing.T, w, h int) *raster.MemorySink {
	t.Helper()
	s, err := raster.NewMemorySink(w, h)
	require.NoError(t, err)
	return s
}

func TestCommands_Errors(t *testing.T) {
	g := pitGrid(t)
	sink := memSink(t, 5, 5)
	seeds := []drainage.Point{{X: 1, Y: 1}}

	assert.ErrorIs(t, terrain.ComputeSlope(nil, sink), terrain.ErrNilGrid)
	assert.ErrorIs(t, terrain.ComputeSlope(g, nil), terrain.ErrNilSink)
	assert.ErrorIs(t, terrain.ComputeHillshade(nil, sink, 45, 315), terrain.ErrNilGrid)
	assert.ErrorIs(t, terrain.TraceDrainage(g, nil, seeds), terrain.ErrNilSink)
	assert.ErrorIs(t, terrain.TraceDrainage(g, sink, nil), terrain.ErrNoSeeds)

	small := memSink(t, 4, 5)
	assert.ErrorIs(t, terrain.ComputeSlope(g, small), terrain.ErrSizeMismatch)
	assert.ErrorIs(t, terrain.TraceDrainage(g, small, seeds), terrain.ErrSizeMismatch)
}

func TestComputeSlope_Pit(t *testing.T) {
	g := pitGrid(t)
	sink := memSink(t, 5, 5)
	require.NoError(t, terrain.ComputeSlope(g, sink))

	s := sink.Surface()
	for x := 0; x < 5; x++ {
		top, _ := s.At(x, 0)
		bottom, _ := s.At(x, 4)
		assert.Zero(t, top)
		assert.Zero(t, bottom)
	}
	centre, _ := s.At(2, 2)
	assert.Zero(t, centre)
	corner, _ := s.At(1, 1)
	assert.InDelta(t, 255*1.25*math.Sqrt2, corner, 1e-9)
}

func TestComputeHillshade_Flat(t *testing.T) {
	g := flatGrid(t, 4, 4)
	sink := memSink(t, 4, 4)
	require.NoError(t, terrain.ComputeHillshade(g, sink, 45, 315))

	v, _ := sink.Surface().At(1, 2)
	assert.InDelta(t, 255*math.Sin(math.Pi/4), v, 1e-9)
	edge, _ := sink.Surface().At(0, 2)
	assert.Zero(t, edge)
}

func TestComputeHillshade_PassesOptions(t *testing.T) {
	g := flatGrid(t, 3, 3)
	sink := memSink(t, 3, 3)
	require.NoError(t, terrain.ComputeHillshade(g, sink, 90, 0, derive.WithScale(1)))

	v, _ := sink.Surface().At(1, 1)
	assert.InDelta(t, 1.0, v, 1e-12)
}

func TestCommands_ForceMethod(t *testing.T) {
	g := flatGrid(t, 3, 3)

	sink := memSink(t, 3, 3)
	require.NoError(t, terrain.ComputeSlope(g, sink, derive.WithMethod(derive.MethodHillshade)))
	v, _ := sink.Surface().At(1, 1)
	assert.Zero(t, v)

	sink = memSink(t, 3, 3)
	require.NoError(t, terrain.ComputeHillshade(g, sink, 45, 315, derive.WithMethod(derive.MethodSlope)))
	v, _ = sink.Surface().At(1, 1)
	assert.InDelta(t, 255*math.Sin(math.Pi/4), v, 1e-9)
}

func TestTraceDrainage_Pit(t *testing.T) {
	g := pitGrid(t)
	sink := memSink(t, 5, 5)
	require.NoError(t, terrain.TraceDrainage(g, sink, []drainage.Point{{X: 1, Y: 1}}))

	s := sink.Surface()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			v, _ := s.At(x, y)
			if (x == 1 && y == 1) || (x == 2 && y == 2) {
				assert.Equal(t, drainage.DefaultMark, v, "(%d,%d)", x, y)
				continue
			}
			assert.Zero(t, v, "(%d,%d)", x, y)
		}
	}
}

// countingSink records how often each cell is written.
type countingSink struct {
	*raster.MemorySink
	writes map[[2]int]int
}

func (c *countingSink) WriteCell(x, y int, v float64) error {
	c.writes[[2]int{x, y}]++
	return c.MemorySink.WriteCell(x, y, v)
}

func TestTraceDrainage_WritesEachCellOnce(t *testing.T) {
	g := pitGrid(t)
	sink := &countingSink{MemorySink: memSink(t, 5, 5), writes: map[[2]int]int{}}
	seeds := []drainage.Point{{X: 1, Y: 1}, {X: 3, Y: 3}, {X: 1.5, Y: 1.9}}
	require.NoError(t, terrain.TraceDrainage(g, sink, seeds))

	assert.Len(t, sink.writes, 3)
	for cell, n := range sink.writes {
		assert.Equal(t, 1, n, "cell %v", cell)
	}
}

func TestTraceDrainage_InvalidSeedWritesNothing(t *testing.T) {
	g := pitGrid(t)
	sink := &countingSink{MemorySink: memSink(t, 5, 5), writes: map[[2]int]int{}}
	err := terrain.TraceDrainage(g, sink, []drainage.Point{{X: 1, Y: 1}, {X: 9, Y: 9}})
	assert.ErrorIs(t, err, drainage.ErrSeedOutOfRange)
	assert.Empty(t, sink.writes)
}

func TestParseMethod(t *testing.T) {
	cases := map[string]terrain.Method{
		"slope":         terrain.MethodSlope,
		" Hillshade ":   terrain.MethodHillshade,
		"shaded_relief": terrain.MethodHillshade,
		"DRAINAGE":      terrain.MethodDrainage,
	}
	for in, want := range cases {
		got, err := terrain.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := terrain.ParseMethod("")
	assert.ErrorIs(t, err, terrain.ErrNoMethod)
	_, err = terrain.ParseMethod("aspect")
	assert.ErrorIs(t, err, terrain.ErrUnknownMethod)
}

func TestRun(t *testing.T) {
	g := pitGrid(t)

	t.Run("NoMethod", func(t *testing.T) {
		err := terrain.Run(g, memSink(t, 5, 5), terrain.Request{})
		assert.ErrorIs(t, err, terrain.ErrNoMethod)
	})
	t.Run("Unknown", func(t *testing.T) {
		err := terrain.Run(g, memSink(t, 5, 5), terrain.Request{Method: "aspect"})
		assert.ErrorIs(t, err, terrain.ErrUnknownMethod)
	})
	t.Run("DrainageWithoutSeeds", func(t *testing.T) {
		err := terrain.Run(g, memSink(t, 5, 5), terrain.NewRequest(terrain.MethodDrainage))
		assert.ErrorIs(t, err, terrain.ErrNoSeeds)
	})
	t.Run("Slope", func(t *testing.T) {
		sink := memSink(t, 5, 5)
		require.NoError(t, terrain.Run(g, sink, terrain.NewRequest(terrain.MethodSlope)))
		v, _ := sink.Surface().At(2, 1)
		assert.Greater(t, v, 0.0)
	})
	t.Run("HillshadeDefaults", func(t *testing.T) {
		r := terrain.NewRequest(terrain.MethodHillshade)
		assert.Equal(t, derive.DefaultAltitude, r.Altitude)
		assert.Equal(t, derive.DefaultAzimuth, r.Azimuth)

		flat := flatGrid(t, 3, 3)
		sink := memSink(t, 3, 3)
		require.NoError(t, terrain.Run(flat, sink, r))
		v, _ := sink.Surface().At(1, 1)
		assert.InDelta(t, 255*math.Sin(math.Pi/4), v, 1e-9)
	})
	t.Run("Drainage", func(t *testing.T) {
		r := terrain.NewRequest(terrain.MethodDrainage)
		r.Seeds = []drainage.Point{{X: 3, Y: 1}}
		r.Drainage = []drainage.Option{drainage.WithMarkValue(1)}
		sink := memSink(t, 5, 5)
		require.NoError(t, terrain.Run(g, sink, r))
		v, _ := sink.Surface().At(2, 2)
		assert.Equal(t, 1.0, v)
	})
}
