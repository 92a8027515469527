package derive

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/terrain/grid"
)

// Compute runs a whole-grid derivative pass over g and returns a surface of
// the same size. Every cell is written exactly once: border cells and cells
// with an invalid kernel get 0, all others the scaled derivative.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Method must be known (ErrUnknownMethod).
//  3. Workers ≥ 1 (ErrBadWorkers).
//  4. Scale positive and finite (ErrBadScale).
//
// Complexity: O(W×H) time, O(W×H) memory for the output.
func Compute(g *grid.Grid, opts ...Option) (*grid.Surface, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validate(g, cfg); err != nil {
		return nil, err
	}

	out := grid.NewSurfaceFor(g)
	cell := cellFunc(g, cfg)

	workers := cfg.Workers
	if workers > g.Height {
		workers = g.Height
	}

	// rows are dealt round-robin so every worker owns a disjoint set
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(first int) {
			defer wg.Done()
			for y := first; y < g.Height; y += workers {
				fillRow(g, out.Row(y), y, cell)
			}
		}(w)
	}
	wg.Wait()

	return out, nil
}

func validate(g *grid.Grid, cfg Options) error {
	if g == nil {
		return ErrNilGrid
	}
	if cfg.Method != MethodSlope && cfg.Method != MethodHillshade {
		return fmt.Errorf("%w: %v", ErrUnknownMethod, cfg.Method)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, cfg.Workers)
	}
	if cfg.Scale <= 0 || math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) {
		return fmt.Errorf("%w: %g", ErrBadScale, cfg.Scale)
	}
	return nil
}

// cellFunc binds the selected derivative and output scaling.
func cellFunc(g *grid.Grid, cfg Options) func(grid.Kernel) float64 {
	ew, ns, scale := g.CellSizeEW, g.CellSizeNS, cfg.Scale
	if cfg.Method == MethodSlope {
		return func(k grid.Kernel) float64 {
			return Slope(k, ew, ns) * scale
		}
	}
	alt, az, clamp := cfg.Altitude, cfg.Azimuth, cfg.Clamp
	return func(k grid.Kernel) float64 {
		i := Hillshade(k, ew, ns, alt, az)
		if clamp && i < 0 {
			i = 0
		}
		return i * scale
	}
}

// fillRow writes one output row. Border rows stay at their zero value.
func fillRow(g *grid.Grid, row []float64, y int, cell func(grid.Kernel) float64) {
	if y == 0 || y == g.Height-1 {
		return
	}
	for x := 1; x < g.Width-1; x++ {
		k, ok := g.Fetch(x, y)
		if !ok {
			row[x] = 0
			continue
		}
		row[x] = cell(k)
	}
}

// SlopeSurface is shorthand for Compute with MethodSlope. The method
// overrides any WithMethod or WithIllumination in opts.
func SlopeSurface(g *grid.Grid, opts ...Option) (*grid.Surface, error) {
	return Compute(g, append(opts[:len(opts):len(opts)], WithMethod(MethodSlope))...)
}

// HillshadeSurface is shorthand for Compute with MethodHillshade and the
// given light source, which override any method or illumination in opts.
func HillshadeSurface(g *grid.Grid, altitude, azimuth float64, opts ...Option) (*grid.Surface, error) {
	return Compute(g, append(opts[:len(opts):len(opts)], WithIllumination(altitude, azimuth))...)
}
