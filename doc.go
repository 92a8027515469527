// Package terrain derives surface products from a single-band elevation
// model (DEM): slope, hillshade and steepest-descent drainage paths.
//
// What is terrain?
//
//	A small, dependency-light engine organised leaf-first:
//		• grid/      immutable elevation Grid, 3×3 Kernel reads, output Surface
//		• derive/    Horn gradients, slope, hillshade, parallel full-grid pass
//		• drainage/  steepest-descent tracing, parallel seeds, sink detection
//		• raster/    Esri ASCII and TIFF sources and sinks
//
// The three commands in this package glue them together: each takes a
// loaded Grid and an open raster.Sink and returns an error.
//
//	ComputeSlope(g, sink)
//	ComputeHillshade(g, sink, altitude, azimuth)
//	TraceDrainage(g, sink, seeds)
//
// Output conventions:
//
//   - Border cells, cells whose kernel touches nodata and untraced cells are 0.
//   - Slope and hillshade are scaled by 255 for byte-range outputs;
//     hillshade is clamped at 0 unless derive.WithClamp(false) is passed.
//   - Drainage marks visited cells with 255.
//
// Quick ASCII example (5×5 pit, drainage from (1,1)):
//
//	10 10 10 10 10        .   .   .   .   .
//	10 10 10 10 10        . 255   .   .   .
//	10 10  0 10 10   →    .   . 255   .   .
//	10 10 10 10 10        .   .   .   .   .
//	10 10 10 10 10        .   .   .   .   .
//
// The cmd/terrain binary wraps these commands in a CLI.
package terrain
