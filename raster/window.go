package raster

import (
	"fmt"

	"github.com/katalvlaran/terrain/grid"
)

// crop applies w to a full-raster sample block and returns the selected
// samples and adjusted georeferencing.
func crop(samples []float64, info Info, w *Window) ([]float64, Info, error) {
	if w == nil {
		return samples, info, nil
	}
	if w.OffsetX < 0 || w.OffsetY < 0 || w.Width < 1 || w.Height < 1 ||
		w.OffsetX+w.Width > info.Width || w.OffsetY+w.Height > info.Height {
		return nil, info, fmt.Errorf("%w: window %dx%d+%d+%d on %dx%d",
			ErrGeometry, w.Width, w.Height, w.OffsetX, w.OffsetY, info.Width, info.Height)
	}
	out := make([]float64, 0, w.Width*w.Height)
	for y := w.OffsetY; y < w.OffsetY+w.Height; y++ {
		base := y*info.Width + w.OffsetX
		out = append(out, samples[base:base+w.Width]...)
	}
	info.OriginX += float64(w.OffsetX) * info.CellSizeEW
	info.OriginY += float64(w.OffsetY) * info.CellSizeNS
	info.Width, info.Height = w.Width, w.Height
	return out, info, nil
}

// toGrid builds the grid for a (cropped) block.
func toGrid(samples []float64, info Info) (*grid.Grid, error) {
	g, err := grid.FromSlice(info.Width, info.Height, samples,
		grid.WithCellSize(info.CellSizeEW, info.CellSizeNS),
		grid.WithNoData(info.NoData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return g, nil
}
