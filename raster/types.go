package raster

import (
	"github.com/katalvlaran/terrain/grid"
)

// OutputNoData is the nodata value declared by file sinks.
const OutputNoData = 0.0

// Info describes the georeferencing of a raster. OriginX/OriginY locate
// the outer corner of the first (top-left) cell.
type Info struct {
	Width, Height int
	CellSizeEW    float64
	CellSizeNS    float64
	NoData        float64
	OriginX       float64
	OriginY       float64
}

// InfoOf returns the georeferencing of g with a zero origin.
func InfoOf(g *grid.Grid) Info {
	return Info{
		Width:      g.Width,
		Height:     g.Height,
		CellSizeEW: g.CellSizeEW,
		CellSizeNS: g.CellSizeNS,
		NoData:     g.NoData,
	}
}

// Source produces an elevation grid.
type Source interface {
	Load() (*grid.Grid, Info, error)
}

// Sink receives a computed surface row by row or cell by cell.
type Sink interface {
	// Bounds returns the sink dimensions.
	Bounds() (width, height int)
	// WriteRow writes a full row of width samples at row y.
	WriteRow(y int, samples []float64) error
	// WriteCell writes one value at (x, y).
	WriteCell(x, y int, v float64) error
	// Close flushes buffered output.
	Close() error
}

// Window selects a sub-rectangle of a source.
type Window struct {
	OffsetX, OffsetY int
	Width, Height    int
}

// Options configures reading and writing.
//
// Window   – optional sub-rectangle to load; nil loads everything.
// CellSize – cell sizes for formats without georeferencing (TIFF).
// NoData   – nodata sentinel override for formats without one (TIFF).
// Georef   – georeferencing written by file sinks.
type Options struct {
	Window     *Window
	CellSizeEW float64
	CellSizeNS float64
	NoData     *float64
	Georef     *Info
}

// Option represents a functional option for Open and Create.
type Option func(*Options)

// DefaultOptions returns unit, north-up cells and no window.
func DefaultOptions() Options {
	return Options{CellSizeEW: 1, CellSizeNS: -1}
}

// WithWindow restricts loading to width×height cells starting at
// (offsetX, offsetY).
func WithWindow(offsetX, offsetY, width, height int) Option {
	return func(o *Options) {
		o.Window = &Window{OffsetX: offsetX, OffsetY: offsetY, Width: width, Height: height}
	}
}

// WithCellSize sets cell sizes for sources that do not carry them.
func WithCellSize(ew, ns float64) Option {
	return func(o *Options) {
		o.CellSizeEW = ew
		o.CellSizeNS = ns
	}
}

// WithNoData sets the nodata sentinel for sources that do not carry one.
func WithNoData(v float64) Option {
	return func(o *Options) { o.NoData = &v }
}

// WithGeoref sets the georeferencing written by file sinks.
func WithGeoref(info Info) Option {
	return func(o *Options) { o.Georef = &info }
}
