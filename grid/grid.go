package grid

import (
	"fmt"
	"math"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice
// indexed values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrBadCellSize for
// unusable cell sizes.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]float64, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	flat := make([]float64, 0, w*h)
	for _, row := range values {
		flat = append(flat, row...)
	}

	return build(w, h, flat, opts)
}

// FromSlice constructs a Grid from a row-major slice of width*height samples.
// The slice is copied.
func FromSlice(width, height int, samples []float64, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: got %d samples for %dx%d", ErrNonRectangular, len(samples), width, height)
	}
	flat := make([]float64, len(samples))
	copy(flat, samples)

	return build(width, height, flat, opts)
}

func build(w, h int, flat []float64, opts []Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !usableCellSize(cfg.CellSizeEW) || !usableCellSize(cfg.CellSizeNS) {
		return nil, fmt.Errorf("%w: ew=%g ns=%g", ErrBadCellSize, cfg.CellSizeEW, cfg.CellSizeNS)
	}

	return &Grid{
		Width:      w,
		Height:     h,
		CellSizeEW: cfg.CellSizeEW,
		CellSizeNS: cfg.CellSizeNS,
		NoData:     cfg.NoData,
		values:     flat,
	}, nil
}

func usableCellSize(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return g.consistent() && x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Interior reports whether (x,y) has a full 3×3 neighbourhood,
// i.e. 1 ≤ x < W-1 and 1 ≤ y < H-1.
func (g *Grid) Interior(x, y int) bool {
	return g.consistent() && x >= 1 && x < g.Width-1 && y >= 1 && y < g.Height-1
}

// consistent reports whether Width and Height still describe the samples.
func (g *Grid) consistent() bool {
	return g.Width > 0 && g.Height > 0 && g.Width*g.Height == len(g.values)
}

// IsNoData reports whether v equals the nodata sentinel.
func (g *Grid) IsNoData(v float64) bool {
	if math.IsNaN(g.NoData) {
		return math.IsNaN(v)
	}
	return v == g.NoData
}

// At returns the sample at (x,y), or ErrOutOfRange.
func (g *Grid) At(x, y int) (float64, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, g.Width, g.Height)
	}
	return g.values[g.Index(x, y)], nil
}

// Row returns a copy of row y, or nil when y is out of range.
func (g *Grid) Row(y int) []float64 {
	if !g.InBounds(0, y) {
		return nil
	}
	out := make([]float64, g.Width)
	copy(out, g.values[y*g.Width:(y+1)*g.Width])
	return out
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Window reads the raw 3×3 window centred on (x,y), nodata samples included.
// It returns false without reading when (x,y) is not an interior cell.
func (g *Grid) Window(x, y int) (Kernel, bool) {
	var k Kernel
	if !g.Interior(x, y) {
		return k, false
	}
	for row := 0; row < 3; row++ {
		base := (y-1+row)*g.Width + x - 1
		copy(k[row*3:row*3+3], g.values[base:base+3])
	}
	return k, true
}

// Fetch reads the 3×3 Kernel centred on (x,y) and classifies it.
// The kernel is valid only for interior cells whose nine samples all
// differ from the nodata sentinel.
func (g *Grid) Fetch(x, y int) (Kernel, bool) {
	k, ok := g.Window(x, y)
	if !ok {
		return k, false
	}
	for _, v := range k {
		if g.IsNoData(v) {
			return k, false
		}
	}
	return k, true
}
