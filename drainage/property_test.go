package drainage_test

import (
	"testing"

	"github.com/katalvlaran/terrain/drainage"
	"github.com/katalvlaran/terrain/grid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestTraceProperties checks termination and descent on random terrain.
func TestTraceProperties(t *testing.T) {
	const n = 12
	properties := gopter.NewProperties(nil)

	properties.Property("paths strictly descend and stay in bounds", prop.ForAll(
		func(vals []float64, sx, sy int) bool {
			g, err := grid.FromSlice(n, n, vals)
			if err != nil {
				return false
			}
			p, err := drainage.Trace(g, drainage.Point{X: float64(sx), Y: float64(sy)})
			if err != nil || len(p.Cells) == 0 || len(p.Cells) > n*n {
				return false
			}
			if p.Stop == drainage.StopMaxSteps {
				return false
			}
			prev, _ := g.At(p.Cells[0].X, p.Cells[0].Y)
			for _, c := range p.Cells[1:] {
				v, err := g.At(c.X, c.Y)
				if err != nil || v >= prev {
					return false
				}
				prev = v
			}
			return true
		},
		gen.SliceOfN(n*n, gen.Float64Range(0, 50)),
		gen.IntRange(0, n-1),
		gen.IntRange(0, n-1),
	))

	properties.TestingRun(t)
}
