package drainage

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/terrain/grid"
)

// Trace follows steepest descent from seed and returns the visited cells.
//
// Behavior:
//  1. Truncate seed to a cell; reject it if outside the grid.
//  2. Record the seed cell.
//  3. Loop:
//     • border cell (no full window)      → StopEdge
//     • no usable neighbour               → StopNoData
//     • no neighbour below current cell   → StopLocalMinimum
//     • otherwise move to the lowest neighbour and record it.
//  4. Abort with StopMaxSteps after the configured number of moves.
func Trace(g *grid.Grid, seed Point, opts ...Option) (Path, error) {
	cfg, err := configure(g, opts)
	if err != nil {
		return Path{}, err
	}
	start, err := seedCell(g, seed)
	if err != nil {
		return Path{}, err
	}
	return walk(g, start, cfg.MaxSteps, nil), nil
}

func configure(g *grid.Grid, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return cfg, ErrNilGrid
	}
	if cfg.MaxSteps < 0 {
		return cfg, fmt.Errorf("%w: %d", ErrBadMaxSteps, cfg.MaxSteps)
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = g.Width * g.Height
	}
	if cfg.Workers < 1 {
		return cfg, fmt.Errorf("%w: %d", ErrBadWorkers, cfg.Workers)
	}
	return cfg, nil
}

func seedCell(g *grid.Grid, p Point) (Cell, error) {
	c := p.Cell()
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || !g.InBounds(c.X, c.Y) {
		return c, fmt.Errorf("%w: (%g,%g) in %dx%d", ErrSeedOutOfRange, p.X, p.Y, g.Width, g.Height)
	}
	return c, nil
}

// walk runs the descent state machine. visit, when non-nil, is called for
// every recorded cell.
func walk(g *grid.Grid, start Cell, maxSteps int, visit func(Cell)) Path {
	path := Path{Seed: start}
	record := func(c Cell) {
		path.Cells = append(path.Cells, c)
		if visit != nil {
			visit(c)
		}
	}

	cur := start
	record(cur)
	for steps := 0; ; steps++ {
		next, stop, ok := descend(g, cur)
		if !ok {
			path.Stop = stop
			return path
		}
		if steps == maxSteps {
			path.Stop = StopMaxSteps
			return path
		}
		cur = next
		record(cur)
	}
}

// descend picks the next cell from cur, or reports why there is none.
func descend(g *grid.Grid, cur Cell) (Cell, Stop, bool) {
	k, ok := g.Window(cur.X, cur.Y)
	if !ok {
		return cur, StopEdge, false
	}
	cands := candidates(g, cur, k)
	if len(cands) == 0 {
		return cur, StopNoData, false
	}
	best := cands[0]
	centre := k[grid.Center]
	if usable(g, centre) && best.Cost >= centre {
		return cur, StopLocalMinimum, false
	}
	return best.Cell(), 0, true
}

// candidates lists the usable neighbours of cur ordered by elevation;
// equal elevations keep kernel order.
func candidates(g *grid.Grid, cur Cell, k grid.Kernel) []Point {
	out := make([]Point, 0, 8)
	for i, v := range k {
		if i == grid.Center || !usable(g, v) {
			continue
		}
		dx, dy := grid.Offset(i)
		out = append(out, Point{
			X:    float64(cur.X + dx),
			Y:    float64(cur.Y + dy),
			Cost: v,
		})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Cost < out[b].Cost })
	return out
}

// usable reports whether v takes part in the descent: not the nodata
// sentinel and not NaN.
func usable(g *grid.Grid, v float64) bool {
	return !g.IsNoData(v) && !math.IsNaN(v)
}
