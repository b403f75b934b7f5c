// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, filesystem, telemetry).
package out

import (
	"context"
	"time"

	"github.com/bnema/infradeploy/internal/domain"
)

// ProgressFunc receives one human-readable line of a streamed engine operation.
type ProgressFunc func(line string)

// ImageRuntime defines the image operations of the container engine.
type ImageRuntime interface {
	PullImage(ctx context.Context, ref string, progress ProgressFunc) error
	// BuildImage builds spec.BuildPath and tags the result with spec.Tag(). It returns the image ID.
	BuildImage(ctx context.Context, spec *domain.ImageSpec, progress ProgressFunc) (string, error)
	InspectImage(ctx context.Context, ref string) (*domain.ImageInfo, error)
	TagImage(ctx context.Context, sourceRef, targetRef string) error
	PushImage(ctx context.Context, ref string, progress ProgressFunc) error
	RemoveImage(ctx context.Context, ref string, force bool) error
}

// ContainerRuntime defines the container operations of the container engine.
type ContainerRuntime interface {
	// Container lifecycle
	CreateContainer(ctx context.Context, spec *domain.ContainerSpec) (string, error)
	StartContainer(ctx context.Context, containerID string) error
	StopContainer(ctx context.Context, containerID string, timeout time.Duration) error
	RestartContainer(ctx context.Context, containerID string, timeout time.Duration) error
	RemoveContainer(ctx context.Context, containerID string, force bool) error
	PauseContainer(ctx context.Context, containerID string) error
	UnpauseContainer(ctx context.Context, containerID string) error

	// Container inspection
	InspectContainer(ctx context.Context, containerID string) (*domain.ContainerInfo, error)
	ContainerLogs(ctx context.Context, containerID string, tail int) ([]byte, error)
	ContainerStats(ctx context.Context, containerID string) (*domain.ContainerStats, error)
	ExecInContainer(ctx context.Context, containerID string, cmd []string) (*domain.ExecResult, error)
}

// NetworkRuntime defines the network operations of the container engine.
type NetworkRuntime interface {
	CreateNetwork(ctx context.Context, spec *domain.NetworkSpec) (string, error)
	InspectNetwork(ctx context.Context, networkID string) (*domain.NetworkInfo, error)
	ConnectNetwork(ctx context.Context, networkID, containerID string) error
	DisconnectNetwork(ctx context.Context, networkID, containerID string, force bool) error
	RemoveNetwork(ctx context.Context, networkID string) error
}

// VolumeRuntime defines the volume operations of the container engine.
type VolumeRuntime interface {
	CreateVolume(ctx context.Context, spec *domain.VolumeSpec) (string, error)
	InspectVolume(ctx context.Context, name string) (*domain.VolumeInfo, error)
	// VolumeUsers returns the IDs of containers, running or not, that mount the volume.
	VolumeUsers(ctx context.Context, name string) ([]string, error)
	RemoveVolume(ctx context.Context, name string, force bool) error
}

// RuntimeClient is the full capability surface of the container engine.
type RuntimeClient interface {
	ImageRuntime
	ContainerRuntime
	NetworkRuntime
	VolumeRuntime

	// Runtime information
	Ping(ctx context.Context) error
	Version(ctx context.Context) (string, error)
}
