package terrain

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/terrain/derive"
	"github.com/katalvlaran/terrain/drainage"
	"github.com/katalvlaran/terrain/grid"
	"github.com/katalvlaran/terrain/raster"
)

// Method names one of the three commands.
type Method string

const (
	MethodSlope     Method = "slope"
	MethodHillshade Method = "hillshade"
	MethodDrainage  Method = "drainage"
)

// ParseMethod maps a name to a Method; "shaded_relief" is an alias of
// hillshade. An empty name yields ErrNoMethod.
func ParseMethod(name string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(name))); m {
	case "":
		return "", ErrNoMethod
	case MethodSlope, MethodHillshade, MethodDrainage:
		return m, nil
	case "shaded_relief":
		return MethodHillshade, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Request selects one command and its parameters.
type Request struct {
	Method   Method
	Altitude float64
	Azimuth  float64
	Seeds    []drainage.Point
	Derive   []derive.Option
	Drainage []drainage.Option
}

// NewRequest returns a request for m with the default light source.
func NewRequest(m Method) Request {
	return Request{Method: m, Altitude: derive.DefaultAltitude, Azimuth: derive.DefaultAzimuth}
}

// Validate reports configuration errors before any processing.
func (r Request) Validate() error {
	switch r.Method {
	case "":
		return ErrNoMethod
	case MethodSlope, MethodHillshade:
		return nil
	case MethodDrainage:
		if len(r.Seeds) == 0 {
			return ErrNoSeeds
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMethod, r.Method)
	}
}

// Run validates r and dispatches it to the matching command.
func Run(g *grid.Grid, sink raster.Sink, r Request) error {
	if err := r.Validate(); err != nil {
		return err
	}
	switch r.Method {
	case MethodSlope:
		return ComputeSlope(g, sink, r.Derive...)
	case MethodHillshade:
		return ComputeHillshade(g, sink, r.Altitude, r.Azimuth, r.Derive...)
	default:
		return TraceDrainage(g, sink, r.Seeds, r.Drainage...)
	}
}
