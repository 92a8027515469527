package derive

import "errors"

// Sentinel errors returned by Compute.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("derive: grid is nil")

	// ErrUnknownMethod indicates an unsupported derivative method.
	ErrUnknownMethod = errors.New("derive: unknown method")

	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("derive: workers must be at least 1")

	// ErrBadScale indicates a scale factor that is not a positive finite number.
	ErrBadScale = errors.New("derive: scale must be positive and finite")
)
