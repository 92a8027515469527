package derive

import "math"

const (
	degPerRad = 180 / math.Pi
	radPerDeg = math.Pi / 180
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * radPerDeg }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * degPerRad }
