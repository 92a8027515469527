// Package derive computes per-cell terrain derivatives from 3×3 elevation
// kernels: slope magnitude and hillshade illumination.
//
// Overview:
//
//   - Gradient applies Horn's central differences to a grid.Kernel:
//     dz/dx = ((k0 + 2k3 + k6) − (k2 + 2k5 + k8)) / (8·EW)
//     dz/dy = ((k0 + 2k1 + k2) − (k6 + 2k7 + k8)) / (8·NS)
//   - Slope returns the unscaled gradient magnitude sqrt(dz/dx² + dz/dy²).
//   - Hillshade returns the unscaled illumination I ∈ [-1, 1] for a light
//     source at a given altitude and azimuth (degrees).
//   - Compute runs a whole-grid pass and returns a grid.Surface whose values
//     are scaled into the output range (×255 by default).
//
// Output policy:
//
//   - Border rows and columns are 0.
//   - Cells whose kernel contains a nodata sample are 0.
//   - NaN results (degenerate geometry) are 0.
//   - Hillshade clamps negative illumination to 0 before scaling unless
//     WithClamp(false) is given.
//
// Concurrency:
//
//   - Compute partitions rows across WithWorkers(n) goroutines. Each worker
//     owns disjoint output rows and only reads the immutable grid, so no
//     locking is involved and results are bit-identical across runs.
//
// Errors (sentinel):
//
//   - ErrNilGrid:       nil *grid.Grid passed to Compute.
//   - ErrUnknownMethod: Method is neither MethodSlope nor MethodHillshade.
//   - ErrBadWorkers:    worker count below 1.
//   - ErrBadScale:      scale factor NaN, infinite or not positive.
package derive
