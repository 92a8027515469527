package grid

import "fmt"

// Surface is a write-side W×H raster of float64 values, zero-initialised.
// One contiguous arena is sliced into per-row buffers so that workers
// owning disjoint rows can fill them without locking.
type Surface struct {
	Width, Height int
	rows          [][]float64
}

// NewSurface allocates a zeroed width×height surface.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	arena := make([]float64, width*height)
	rows := make([][]float64, height)
	for y := range rows {
		rows[y] = arena[y*width : (y+1)*width : (y+1)*width]
	}
	return &Surface{Width: width, Height: height, rows: rows}, nil
}

// NewSurfaceFor allocates a surface matching g's dimensions.
func NewSurfaceFor(g *Grid) *Surface {
	s, _ := NewSurface(g.Width, g.Height)
	return s
}

// Set writes v at (x,y), or returns ErrOutOfRange.
func (s *Surface) Set(x, y int, v float64) error {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, s.Width, s.Height)
	}
	s.rows[y][x] = v
	return nil
}

// At returns the value at (x,y), or ErrOutOfRange.
func (s *Surface) At(x, y int) (float64, error) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, x, y, s.Width, s.Height)
	}
	return s.rows[y][x], nil
}

// Row returns the owned buffer of row y; writes through it land in the
// surface. It returns nil when y is out of range.
func (s *Surface) Row(y int) []float64 {
	if y < 0 || y >= s.Height {
		return nil
	}
	return s.rows[y]
}
