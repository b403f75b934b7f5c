// Package containers implements the container resource and its manager.
package containers

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/bnema/zerowrap"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/internal/usecase/images"
)

// Container is one container bound to an image. The image is referenced, not
// owned: removing the container never touches it.
type Container struct {
	name     string
	image    *images.Image
	spec     domain.ContainerSpec
	runtime  out.ContainerRuntime
	recorder out.OperationRecorder
	log      zerowrap.Logger

	mu sync.RWMutex
	id string
}

// NewContainer creates an unrealized container. recorder may be nil.
func NewContainer(
	name string,
	image *images.Image,
	spec domain.ContainerSpec,
	rt out.ContainerRuntime,
	recorder out.OperationRecorder,
	log zerowrap.Logger,
) *Container {
	spec.Name = name
	return &Container{
		name:     name,
		image:    image,
		spec:     spec,
		runtime:  rt,
		recorder: recorder,
		log:      log,
	}
}

func (c *Container) Name() string {
	return c.name
}

func (c *Container) Image() *images.Image {
	return c.image
}

// Spec returns a copy of the container configuration. Once created, that is
// the spec the container was created with, overrides included.
func (c *Container) Spec() domain.ContainerSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()

	spec := c.spec
	spec.Cmd = slices.Clone(c.spec.Cmd)
	spec.Networks = slices.Clone(c.spec.Networks)
	return spec
}

// ID returns the runtime identity, or "" when the container is not created.
func (c *Container) ID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.id
}

func (c *Container) Created() bool {
	return c.ID() != ""
}

// Create resolves the bound image and creates the container from the stored
// spec with overrides applied. A container that already has an ID is
// rejected with ErrAlreadyCreated.
func (c *Container) Create(ctx context.Context, overrides domain.ContainerSpec) error {
	ctx, log := c.begin(ctx, "create")

	if c.Created() {
		log.Warn().Str("container_id", c.ID()).Msg("container already created")
		return c.fail(ctx, domain.NewPreconditionError(domain.ResourceContainer, c.name, "create", domain.ErrAlreadyCreated))
	}

	if c.image == nil {
		log.Warn().Msg("container has no image")
		return c.fail(ctx, domain.NewPreconditionError(domain.ResourceContainer, c.name, "create", domain.ErrImageNotAvailable))
	}
	if _, err := c.image.Inspect(ctx); err != nil {
		log.Error().Err(err).Str("image", c.image.Ref()).Msg("image not found")
		return c.fail(ctx, domain.NewRemoteError(domain.ResourceContainer, c.name, "create", err))
	}

	c.mu.RLock()
	spec := c.spec.Merge(overrides)
	c.mu.RUnlock()
	spec.Name = c.name
	spec.Image = c.image.Ref()
	spec.Labels = domain.ManagedLabels(domain.ResourceContainer, c.name, spec.Labels)

	log.Info().Str("image", spec.Image).Msg("creating container")
	id, err := c.runtime.CreateContainer(ctx, &spec)
	if err != nil {
		log.Error().Err(err).Msg("failed to create container")
		return c.fail(ctx, domain.NewRemoteError(domain.ResourceContainer, c.name, "create", err))
	}

	c.mu.Lock()
	c.id = id
	c.spec = spec
	c.mu.Unlock()

	log.Info().Str("container_id", id).Msg("container created")
	return c.done(ctx, "create")
}

// Adopt binds the container to an existing runtime container with the same
// name, left over from an earlier run. It reports whether one was found. A
// container already bound is left as is; a same-named container that
// infradeploy did not create is refused with ErrNotManaged.
func (c *Container) Adopt(ctx context.Context) (bool, error) {
	ctx, log := c.begin(ctx, "adopt")

	if c.Created() {
		return true, nil
	}

	info, err := c.runtime.InspectContainer(ctx, c.name)
	if errors.Is(err, domain.ErrContainerNotFound) {
		log.Debug().Msg("no existing container to adopt")
		return false, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to look up existing container")
		return false, c.fail(ctx, domain.NewRemoteError(domain.ResourceContainer, c.name, "adopt", err))
	}
	if !domain.IsManagedBy(info.Labels, domain.ResourceContainer, c.name) {
		log.Warn().Str("container_id", info.ID).Msg("existing container is not managed by infradeploy")
		return false, c.fail(ctx, domain.NewPreconditionError(domain.ResourceContainer, c.name, "adopt", domain.ErrNotManaged))
	}

	c.mu.Lock()
	c.id = info.ID
	c.mu.Unlock()

	log.Info().Str("container_id", info.ID).Str("status", string(info.Status)).Msg("container adopted")
	return true, c.done(ctx, "adopt")
}

func (c *Container) Start(ctx context.Context) error {
	return c.call(ctx, "start", func(ctx context.Context, id string) error {
		return c.runtime.StartContainer(ctx, id)
	})
}

func (c *Container) Stop(ctx context.Context) error {
	return c.call(ctx, "stop", func(ctx context.Context, id string) error {
		return c.runtime.StopContainer(ctx, id, c.stopTimeout())
	})
}

func (c *Container) Restart(ctx context.Context) error {
	return c.call(ctx, "restart", func(ctx context.Context, id string) error {
		return c.runtime.RestartContainer(ctx, id, c.stopTimeout())
	})
}

func (c *Container) stopTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.spec.StopTimeout
}

func (c *Container) Pause(ctx context.Context) error {
	return c.call(ctx, "pause", func(ctx context.Context, id string) error {
		return c.runtime.PauseContainer(ctx, id)
	})
}

func (c *Container) Unpause(ctx context.Context) error {
	return c.call(ctx, "unpause", func(ctx context.Context, id string) error {
		return c.runtime.UnpauseContainer(ctx, id)
	})
}

// Remove deletes the container and clears its ID. Removing a container that
// has no ID fails every time.
func (c *Container) Remove(ctx context.Context, force bool) error {
	err := c.call(ctx, "remove", func(ctx context.Context, id string) error {
		return c.runtime.RemoveContainer(ctx, id, force)
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.id = ""
	c.mu.Unlock()
	return nil
}

func (c *Container) Inspect(ctx context.Context) (*domain.ContainerInfo, error) {
	var info *domain.ContainerInfo
	err := c.call(ctx, "inspect", func(ctx context.Context, id string) error {
		var err error
		info, err = c.runtime.InspectContainer(ctx, id)
		return err
	})
	return info, err
}

// Logs returns the last tail lines of output, or everything when tail is 0.
func (c *Container) Logs(ctx context.Context, tail int) (string, error) {
	var logs []byte
	err := c.call(ctx, "logs", func(ctx context.Context, id string) error {
		var err error
		logs, err = c.runtime.ContainerLogs(ctx, id, tail)
		return err
	})
	return string(logs), err
}

// Exec runs cmd inside the container and returns its exit code and output.
func (c *Container) Exec(ctx context.Context, cmd []string) (*domain.ExecResult, error) {
	if len(cmd) == 0 {
		ctx, log := c.begin(ctx, "exec")
		log.Warn().Msg("empty command")
		return nil, c.fail(ctx, domain.NewPreconditionError(domain.ResourceContainer, c.name, "exec", domain.ErrEmptyCommand))
	}

	var result *domain.ExecResult
	err := c.call(ctx, "exec", func(ctx context.Context, id string) error {
		var err error
		result, err = c.runtime.ExecInContainer(ctx, id, cmd)
		return err
	})
	return result, err
}

// ResourceUsage returns a single stats snapshot.
func (c *Container) ResourceUsage(ctx context.Context) (*domain.ContainerStats, error) {
	var stats *domain.ContainerStats
	err := c.call(ctx, "stats", func(ctx context.Context, id string) error {
		var err error
		stats, err = c.runtime.ContainerStats(ctx, id)
		return err
	})
	return stats, err
}

// call runs fn against the container ID. Without an ID the runtime is never
// contacted and a precondition error is returned.
func (c *Container) call(ctx context.Context, op string, fn func(ctx context.Context, id string) error) error {
	ctx, log := c.begin(ctx, op)

	id := c.ID()
	if id == "" {
		log.Warn().Msg("no container created")
		return c.fail(ctx, domain.NewPreconditionError(domain.ResourceContainer, c.name, op, domain.ErrContainerNotCreated))
	}

	if err := fn(ctx, id); err != nil {
		log.Error().Err(err).Str("container_id", id).Msg("container operation failed")
		return c.fail(ctx, domain.NewRemoteError(domain.ResourceContainer, c.name, op, err))
	}

	log.Debug().Str("container_id", id).Msg("container operation succeeded")
	return c.done(ctx, op)
}

func (c *Container) begin(ctx context.Context, action string) (context.Context, zerowrap.Logger) {
	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, c.log), map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  action,
		zerowrap.FieldEntityID: c.name,
	})
	return ctx, zerowrap.FromCtx(ctx)
}

func (c *Container) fail(ctx context.Context, err *domain.OpError) error {
	if c.recorder != nil {
		c.recorder.RecordOperation(ctx, domain.ResourceContainer, err.Op, err)
	}
	return err
}

func (c *Container) done(ctx context.Context, op string) error {
	if c.recorder != nil {
		c.recorder.RecordOperation(ctx, domain.ResourceContainer, op, nil)
	}
	return nil
}
