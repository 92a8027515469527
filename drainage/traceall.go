package drainage

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/terrain/grid"
)

// TraceAll traces every seed independently and returns a surface with
// MarkValue on each visited cell and 0 elsewhere, along with the per-seed
// paths in input order.
//
// All seeds are validated before any tracing starts, so an out-of-range
// seed yields no partial output.
func TraceAll(g *grid.Grid, seeds []Point, opts ...Option) (*grid.Surface, []Path, error) {
	cfg, err := configure(g, opts)
	if err != nil {
		return nil, nil, err
	}
	if len(seeds) == 0 {
		return nil, nil, ErrNoSeeds
	}
	starts := make([]Cell, len(seeds))
	for i, p := range seeds {
		if starts[i], err = seedCell(g, p); err != nil {
			return nil, nil, err
		}
	}

	// concurrent paths may cross; setting a flag twice is harmless
	visited := make([]atomic.Bool, g.Width*g.Height)
	mark := func(c Cell) { visited[g.Index(c.X, c.Y)].Store(true) }

	paths := make([]Path, len(starts))
	jobs := make(chan int)
	workers := cfg.Workers
	if workers > len(starts) {
		workers = len(starts)
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				paths[i] = walk(g, starts[i], cfg.MaxSteps, mark)
			}
		}()
	}
	for i := range starts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	out := grid.NewSurfaceFor(g)
	for idx := range visited {
		if visited[idx].Load() {
			x, y := g.Coordinate(idx)
			_ = out.Set(x, y, cfg.MarkValue)
		}
	}
	return out, paths, nil
}
