package raster

import "errors"

var (
	// ErrOpen indicates a file that cannot be opened or created.
	ErrOpen = errors.New("raster: cannot open file")
	// ErrMalformed indicates content that does not decode.
	ErrMalformed = errors.New("raster: malformed raster")
	// ErrUnsupportedFormat indicates an unknown extension or pixel layout.
	ErrUnsupportedFormat = errors.New("raster: unsupported format")
	// ErrBandCount indicates a raster with more than one band.
	ErrBandCount = errors.New("raster: exactly one band is supported")
	// ErrGeometry indicates a window or size outside the raster.
	ErrGeometry = errors.New("raster: requested geometry exceeds raster")
	// ErrClosed indicates a write to a closed sink.
	ErrClosed = errors.New("raster: sink is closed")
)
