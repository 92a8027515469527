package derive

import (
	"math"

	"github.com/katalvlaran/terrain/grid"
)

// Gradient returns Horn's finite-difference partial derivatives of the
// surface at the kernel centre for cell sizes ew and ns.
func Gradient(k grid.Kernel, ew, ns float64) (dzdx, dzdy float64) {
	dzdx = ((k[0] + 2*k[3] + k[6]) - (k[2] + 2*k[5] + k[8])) / (8 * ew)
	dzdy = ((k[0] + 2*k[1] + k[2]) - (k[6] + 2*k[7] + k[8])) / (8 * ns)
	return dzdx, dzdy
}

// Slope returns the gradient magnitude at the kernel centre.
// A NaN magnitude is reported as 0.
func Slope(k grid.Kernel, ew, ns float64) float64 {
	dzdx, dzdy := Gradient(k, ew, ns)
	m := math.Sqrt(dzdx*dzdx + dzdy*dzdy)
	if math.IsNaN(m) {
		return 0
	}
	return m
}

// Hillshade returns the illumination of the kernel centre by a light source
// at altitudeDeg above the horizon and azimuthDeg clockwise from north.
//
//	S = 90° − atan(m)
//	A = atan2(dz/dx, dz/dy)
//	I = sin(alt)·sin(S) + cos(alt)·cos(S)·cos((az − 90°) − A)
//
// The result is unscaled and lies in [-1, 1]; NaN is reported as 0.
func Hillshade(k grid.Kernel, ew, ns, altitudeDeg, azimuthDeg float64) float64 {
	dzdx, dzdy := Gradient(k, ew, ns)
	m := math.Sqrt(dzdx*dzdx + dzdy*dzdy)
	s := Radians(90 - Degrees(math.Atan(m)))
	a := math.Atan2(dzdx, dzdy)
	alt := Radians(altitudeDeg)

	i := math.Sin(alt)*math.Sin(s) +
		math.Cos(alt)*math.Cos(s)*math.Cos(Radians(azimuthDeg-90)-a)
	if math.IsNaN(i) {
		return 0
	}
	return i
}
