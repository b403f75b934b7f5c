package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// Managers wrap them in an OpError so callers can match both the sentinel and its kind.
var (
	// Registry errors
	ErrAlreadyRegistered = errors.New("resource already registered")
	ErrNotRegistered     = errors.New("resource not registered")
	ErrAlreadyCreated    = errors.New("resource already created")
	ErrNotManaged        = errors.New("resource exists but is not managed by infradeploy")

	// Image errors
	ErrNoBuildPath       = errors.New("image has no build path")
	ErrImageNotAvailable = errors.New("image is neither pulled nor built")
	ErrImageNotTagged    = errors.New("image is not tagged")
	ErrImageNotFound     = errors.New("image not found")
	ErrImageStream       = errors.New("image operation reported an error")

	// Container errors
	ErrContainerNotCreated = errors.New("container has not been created")
	ErrContainerNotFound   = errors.New("container not found")
	ErrEmptyCommand        = errors.New("command cannot be empty")

	// Network errors
	ErrNetworkNotCreated = errors.New("network has not been created")
	ErrNetworkNotFound   = errors.New("network not found")

	// Volume errors
	ErrVolumeNotCreated = errors.New("volume has not been created")
	ErrVolumeInUse      = errors.New("volume is in use")
	ErrVolumeNotFound   = errors.New("volume not found")

	// Config errors
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrStateLoadFailed  = errors.New("failed to load state")
	ErrStateSaveFailed  = errors.New("failed to save state")
	ErrInvalidImageName = errors.New("invalid image name")
)
