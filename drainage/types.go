package drainage

import (
	"fmt"
	"math"
	"runtime"
)

// Cell is an integral grid coordinate.
type Cell struct {
	X, Y int
}

// Point is a continuous grid coordinate. Cost orders candidate neighbours
// during descent (it holds their elevation) and is not used otherwise.
type Point struct {
	X, Y float64
	Cost float64
}

// Cell truncates p to the cell containing it.
func (p Point) Cell() Cell {
	return Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}

// Stop tells why a trace ended.
type Stop int

const (
	// StopLocalMinimum: no neighbour is strictly lower than the current cell.
	StopLocalMinimum Stop = iota
	// StopEdge: the current cell lies on the one-cell border of the grid.
	StopEdge
	// StopNoData: the window around the current cell has no usable neighbour.
	StopNoData
	// StopMaxSteps: the step cap was reached.
	StopMaxSteps
)

func (s Stop) String() string {
	switch s {
	case StopLocalMinimum:
		return "local-minimum"
	case StopEdge:
		return "edge"
	case StopNoData:
		return "nodata"
	case StopMaxSteps:
		return "max-steps"
	default:
		return fmt.Sprintf("stop(%d)", int(s))
	}
}

// Path is the record of one trace: the seed, every visited cell in walk
// order (seed first) and the reason the walk ended.
type Path struct {
	Seed  Cell
	Cells []Cell
	Stop  Stop
}

// DefaultMark is the value written for visited cells.
const DefaultMark = 255.0

// Options configures tracing.
//
// MaxSteps  – cap on moves per path; 0 means W×H.
// MarkValue – value written on the output surface for visited cells.
// Workers   – number of seeds traced concurrently by TraceAll.
type Options struct {
	MaxSteps  int
	MarkValue float64
	Workers   int
}

// Option represents a functional option for configuring tracing.
type Option func(*Options)

// DefaultOptions returns an uncapped (W×H) trace marking cells with
// DefaultMark on every CPU.
func DefaultOptions() Options {
	return Options{
		MaxSteps:  0,
		MarkValue: DefaultMark,
		Workers:   runtime.NumCPU(),
	}
}

// WithMaxSteps caps the number of moves per path.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithMarkValue sets the value written for visited cells.
func WithMarkValue(v float64) Option {
	return func(o *Options) { o.MarkValue = v }
}

// WithWorkers sets the number of concurrent tracers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}
