package raster

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/katalvlaran/terrain/grid"
	"golang.org/x/image/tiff"
)

// ReadTIFF decodes a single-band grey TIFF into a grid. Pixel values
// become elevations unchanged; cell sizes and nodata come from options
// (nodata defaults to grid.DefaultNoData, which no pixel can equal).
func ReadTIFF(r io.Reader, opts ...Option) (*grid.Grid, Info, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	img, err := tiff.Decode(r)
	if err != nil {
		return nil, Info{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	b := img.Bounds()
	info := Info{
		Width:      b.Dx(),
		Height:     b.Dy(),
		CellSizeEW: cfg.CellSizeEW,
		CellSizeNS: cfg.CellSizeNS,
		NoData:     grid.DefaultNoData,
	}
	if cfg.NoData != nil {
		info.NoData = *cfg.NoData
	}

	samples := make([]float64, 0, info.Width*info.Height)
	switch m := img.(type) {
	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				samples = append(samples, float64(m.GrayAt(x, y).Y))
			}
		}
	case *image.Gray16:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				samples = append(samples, float64(m.Gray16At(x, y).Y))
			}
		}
	case *image.Paletted:
		return nil, Info{}, fmt.Errorf("%w: paletted TIFF", ErrUnsupportedFormat)
	default:
		return nil, Info{}, fmt.Errorf("%w: %T", ErrBandCount, img)
	}

	samples, info, err = crop(samples, info, cfg.Window)
	if err != nil {
		return nil, Info{}, err
	}
	g, err := toGrid(samples, info)
	return g, info, err
}

// grayImage renders rows into an 8-bit image, rounding and saturating.
func grayImage(width, height int, rows func(y int) []float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		line := img.Pix[y*img.Stride : y*img.Stride+width]
		for x, v := range rows(y) {
			line[x] = toByte(v)
		}
	}
	return img
}

func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

func writeTIFF(w io.Writer, img *image.Gray) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}
