package terrain

import "errors"

// Sentinel errors reported before any output is produced.
var (
	// ErrNilGrid indicates that no grid was supplied.
	ErrNilGrid = errors.New("terrain: grid is nil")
	// ErrNilSink indicates that no sink was supplied.
	ErrNilSink = errors.New("terrain: sink is nil")
	// ErrSizeMismatch indicates a sink whose size differs from the grid.
	ErrSizeMismatch = errors.New("terrain: sink size differs from grid")
	// ErrNoMethod indicates that no method was selected.
	ErrNoMethod = errors.New("terrain: no method selected")
	// ErrUnknownMethod indicates an unsupported method name.
	ErrUnknownMethod = errors.New("terrain: unknown method")
	// ErrNoSeeds indicates a drainage request without seed points.
	ErrNoSeeds = errors.New("terrain: drainage requires at least one seed")
)
