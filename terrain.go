package terrain

import (
	"fmt"

	"github.com/katalvlaran/terrain/derive"
	"github.com/katalvlaran/terrain/drainage"
	"github.com/katalvlaran/terrain/grid"
	"github.com/katalvlaran/terrain/raster"
)

// ComputeSlope writes the slope surface of g to sink, row by row.
// opts are passed to derive.Compute; the method is forced to slope.
func ComputeSlope(g *grid.Grid, sink raster.Sink, opts ...derive.Option) error {
	if err := check(g, sink); err != nil {
		return err
	}
	s, err := derive.SlopeSurface(g, opts...)
	if err != nil {
		return err
	}
	return writeRows(sink, s)
}

// ComputeHillshade writes the hillshade of g for a light source at
// altitude/azimuth degrees to sink, row by row.
func ComputeHillshade(g *grid.Grid, sink raster.Sink, altitude, azimuth float64, opts ...derive.Option) error {
	if err := check(g, sink); err != nil {
		return err
	}
	s, err := derive.HillshadeSurface(g, altitude, azimuth, opts...)
	if err != nil {
		return err
	}
	return writeRows(sink, s)
}

// TraceDrainage traces every seed over g and writes each visited cell to
// sink once. Unvisited cells are left to the sink's zero initialisation.
func TraceDrainage(g *grid.Grid, sink raster.Sink, seeds []drainage.Point, opts ...drainage.Option) error {
	if err := check(g, sink); err != nil {
		return err
	}
	if len(seeds) == 0 {
		return ErrNoSeeds
	}
	s, paths, err := drainage.TraceAll(g, seeds, opts...)
	if err != nil {
		return err
	}

	written := make([]bool, g.Width*g.Height)
	for _, p := range paths {
		for _, c := range p.Cells {
			idx := g.Index(c.X, c.Y)
			if written[idx] {
				continue
			}
			written[idx] = true
			v, err := s.At(c.X, c.Y)
			if err != nil {
				return err
			}
			if err := sink.WriteCell(c.X, c.Y, v); err != nil {
				return fmt.Errorf("write cell (%d,%d): %w", c.X, c.Y, err)
			}
		}
	}
	return nil
}

func check(g *grid.Grid, sink raster.Sink) error {
	if g == nil {
		return ErrNilGrid
	}
	if sink == nil {
		return ErrNilSink
	}
	if w, h := sink.Bounds(); w != g.Width || h != g.Height {
		return fmt.Errorf("%w: sink %dx%d, grid %dx%d", ErrSizeMismatch, w, h, g.Width, g.Height)
	}
	return nil
}

func writeRows(sink raster.Sink, s *grid.Surface) error {
	for y := 0; y < s.Height; y++ {
		if err := sink.WriteRow(y, s.Row(y)); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}
	return nil
}
