// Package grid holds a single-band elevation raster in memory and exposes
// the 3×3 neighbourhood reads every terrain derivative is built on.
//
// What:
//
//   - Grid wraps a rectangular W×H block of float64 elevation samples with
//     its east-west / north-south cell size and a nodata sentinel.
//   - Window and Fetch read the 3×3 Kernel centred on an interior cell.
//   - Surface is the write side: a zero-initialised W×H output buffer with
//     one owned row slice per line and bounds-checked writes.
//
// Why:
//
//   - Slope and hillshade need finite differences over a fixed 3×3 window.
//   - Drainage tracing walks the same windows cell by cell.
//   - Output rows can be filled by independent workers without locking.
//
// Complexity:
//
//   - NewGrid, FromSlice: O(W×H) time and memory (deep copy).
//   - Window, Fetch:      O(1).
//   - NewSurface:         O(W×H) memory, one allocation.
//
// Options:
//
//   - WithCellSize(ew, ns): signed, non-zero, finite cell sizes (default 1, -1).
//   - WithNoData(v):        sentinel marking missing samples (default -9999).
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellSize:    zero, NaN or infinite cell size.
//   - ErrOutOfRange:     coordinate outside [0,W)×[0,H).
package grid
