package scene

import "errors"

// Domain errors for scene setup.
var (
	// ErrNoSurface indicates the host could not provide a drawing surface.
	ErrNoSurface = errors.New("scene: no drawing surface available")

	// ErrAlreadyRunning indicates Start was called on a running driver.
	ErrAlreadyRunning = errors.New("scene: driver already running")
)
