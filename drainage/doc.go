// Package drainage traces steepest-descent flow paths over an elevation grid.
//
// Overview:
//
//   - Trace walks from a seed cell to the strictly lowest of its eight
//     neighbours, step after step, until the walk reaches a local minimum,
//     the one-cell border of the grid, a window with no usable samples,
//     or the configured step cap.
//   - TraceAll runs many seeds in parallel and marks every visited cell on a
//     grid.Surface. Marks are idempotent: a cell crossed by several paths is
//     marked once, no visit count is kept.
//   - Sinks groups the local-minimum cells where paths end into 8-connected
//     depressions.
//
// Descent rule:
//
//   - Candidates are the non-nodata neighbours ordered by elevation (their
//     Point.Cost). Ties keep row-major kernel order, so the lowest kernel
//     index wins.
//   - A move happens only to a neighbour strictly lower than the current
//     cell, which bounds the walk by the number of distinct elevations.
//     On a flat neighbourhood the walk halts immediately.
//
// Complexity:
//
//   - Trace:    O(L) time and memory, L = path length ≤ W×H.
//   - TraceAll: O(Σ L) time, O(W×H) memory for the visited mask.
//   - Sinks:    O(W×H) time and memory.
//
// Errors (sentinel):
//
//   - ErrNilGrid:        nil *grid.Grid.
//   - ErrNoSeeds:        TraceAll called without seeds.
//   - ErrSeedOutOfRange: a seed outside [0,W)×[0,H).
//   - ErrBadMaxSteps:    negative step cap.
//   - ErrBadWorkers:     worker count below 1.
package drainage
