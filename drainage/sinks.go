package drainage

import (
	"github.com/katalvlaran/terrain/grid"
)

// Sinks finds the depressions where descent paths end: interior cells with
// no strictly lower usable neighbour, grouped into 8-connected components.
// Adjacent minima necessarily share one elevation. Each component is a
// slice of row-major cell indices in BFS order; components appear in
// row-major order of their first cell.
//
// To convert an index back to (x,y), use g.Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for flags and output.
func Sinks(g *grid.Grid) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	total := g.Width * g.Height
	minimum := make([]bool, total)
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			k, _ := g.Window(x, y)
			if !usable(g, k[grid.Center]) {
				continue
			}
			_, stop, moved := descend(g, Cell{X: x, Y: y})
			minimum[g.Index(x, y)] = !moved && stop == StopLocalMinimum
		}
	}

	seen := make([]bool, total)
	var comps [][]int
	for i0 := 0; i0 < total; i0++ {
		if !minimum[i0] || seen[i0] {
			continue
		}

		// BFS to collect the depression
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for i := 0; i < 9; i++ {
				if i == grid.Center {
					continue
				}
				dx, dy := grid.Offset(i)
				vx, vy := ux+dx, uy+dy
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.Index(vx, vy)
				if seen[vi] || !minimum[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}
	return comps, nil
}
