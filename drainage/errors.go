package drainage

import "errors"

// Sentinel errors for drainage operations.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("drainage: grid is nil")
	// ErrNoSeeds indicates that no seed points were supplied.
	ErrNoSeeds = errors.New("drainage: at least one seed is required")
	// ErrSeedOutOfRange indicates a seed outside the grid.
	ErrSeedOutOfRange = errors.New("drainage: seed outside grid")
	// ErrBadMaxSteps indicates a negative step cap.
	ErrBadMaxSteps = errors.New("drainage: MaxSteps must be non-negative")
	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("drainage: workers must be at least 1")
)
