package derive

import (
	"fmt"
	"runtime"
	"strings"
)

// Method selects the derivative computed by a full-surface pass.
type Method int

const (
	// MethodSlope computes gradient magnitude.
	MethodSlope Method = iota + 1
	// MethodHillshade computes illumination.
	MethodHillshade
)

// String returns the method name used on the command line.
func (m Method) String() string {
	switch m {
	case MethodSlope:
		return "slope"
	case MethodHillshade:
		return "hillshade"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps a name to a Method. "shaded_relief" is accepted as an
// alias of "hillshade".
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "slope":
		return MethodSlope, nil
	case "hillshade", "shaded_relief":
		return MethodHillshade, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

const (
	// DefaultAltitude is the default light source elevation in degrees.
	DefaultAltitude = 45.0
	// DefaultAzimuth is the default light source direction in degrees (north-west).
	DefaultAzimuth = 315.0
	// ByteScale maps unit results onto the 0–255 range of 8-bit outputs.
	ByteScale = 255.0
)

// Options configures a full-surface pass.
//
// Method   – MethodSlope (default) or MethodHillshade.
// Altitude – light elevation in degrees (hillshade only).
// Azimuth  – light direction in degrees clockwise from north (hillshade only).
// Scale    – factor applied to every written value (default ByteScale).
// Clamp    – clamp illumination to [0,1] before scaling (default true).
// Workers  – number of row workers (default runtime.NumCPU()).
type Options struct {
	Method   Method
	Altitude float64
	Azimuth  float64
	Scale    float64
	Clamp    bool
	Workers  int
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// DefaultOptions returns a slope pass scaled to 0–255 using every CPU.
func DefaultOptions() Options {
	return Options{
		Method:   MethodSlope,
		Altitude: DefaultAltitude,
		Azimuth:  DefaultAzimuth,
		Scale:    ByteScale,
		Clamp:    true,
		Workers:  runtime.NumCPU(),
	}
}

// WithMethod selects the derivative.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithIllumination selects MethodHillshade with the given light source.
func WithIllumination(altitude, azimuth float64) Option {
	return func(o *Options) {
		o.Method = MethodHillshade
		o.Altitude = altitude
		o.Azimuth = azimuth
	}
}

// WithScale sets the factor applied to every written value.
// Use 1 to obtain physical slope magnitudes.
func WithScale(scale float64) Option {
	return func(o *Options) { o.Scale = scale }
}

// WithClamp toggles clamping of negative illumination to 0.
func WithClamp(clamp bool) Option {
	return func(o *Options) { o.Clamp = clamp }
}

// WithWorkers sets the number of row workers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}
