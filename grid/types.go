package grid

// DefaultNoData is the nodata sentinel used when none is configured.
// It matches the Esri ASCII grid default.
const DefaultNoData = -9999.0

// Kernel is a 3×3 sample window stored row-major; index 4 is the centre.
//
//	0 1 2
//	3 4 5
//	6 7 8
type Kernel [9]float64

// Center is the kernel index of the window's own cell.
const Center = 4

// Offset returns the (dx, dy) step from the centre to kernel index i.
func Offset(i int) (dx, dy int) {
	return i%3 - 1, i/3 - 1
}

// Options contains the georeferencing parameters of a Grid.
type Options struct {
	// CellSizeEW is the ground distance of one column step.
	CellSizeEW float64
	// CellSizeNS is the ground distance of one row step. North-up rasters
	// carry a negative value.
	CellSizeNS float64
	// NoData marks missing samples. A NaN sentinel matches NaN samples.
	NoData float64
}

// Option configures a Grid at construction.
type Option func(*Options)

// DefaultOptions returns unit cells in a north-up layout (EW=1, NS=-1)
// and DefaultNoData as sentinel.
func DefaultOptions() Options {
	return Options{
		CellSizeEW: 1,
		CellSizeNS: -1,
		NoData:     DefaultNoData,
	}
}

// WithCellSize sets the east-west and north-south cell sizes.
func WithCellSize(ew, ns float64) Option {
	return func(o *Options) {
		o.CellSizeEW = ew
		o.CellSizeNS = ns
	}
}

// WithNoData sets the nodata sentinel.
func WithNoData(v float64) Option {
	return func(o *Options) {
		o.NoData = v
	}
}

// Grid is an immutable single-band elevation raster.
// Samples are stored row-major: values[y*Width+x].
type Grid struct {
	Width, Height int
	CellSizeEW    float64
	CellSizeNS    float64
	NoData        float64
	values        []float64
}
