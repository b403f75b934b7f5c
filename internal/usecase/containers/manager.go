package containers

import (
	"context"

	"github.com/bnema/zerowrap"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/internal/usecase/images"
	"github.com/bnema/infradeploy/pkg/registry"
)

// Manager owns a named set of containers.
type Manager struct {
	runtime    out.ContainerRuntime
	recorder   out.OperationRecorder
	log        zerowrap.Logger
	containers *registry.Registry[*Container]
}

// NewManager creates an empty container manager. recorder may be nil.
func NewManager(rt out.ContainerRuntime, recorder out.OperationRecorder, log zerowrap.Logger) *Manager {
	return &Manager{
		runtime:    rt,
		recorder:   recorder,
		log:        log,
		containers: registry.New[*Container](),
	}
}

func (m *Manager) ctx(ctx context.Context, action string, name string) (context.Context, zerowrap.Logger) {
	fields := map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: action,
	}
	if name != "" {
		fields[zerowrap.FieldEntityID] = name
	}
	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, m.log), fields)
	return ctx, zerowrap.FromCtx(ctx)
}

// Add registers an unrealized container bound to image. A name that is
// already registered is rejected and the existing container is kept.
func (m *Manager) Add(ctx context.Context, name string, image *images.Image, spec domain.ContainerSpec) (*Container, error) {
	_, log := m.ctx(ctx, "AddContainer", name)

	if image == nil {
		log.Warn().Msg("container has no image")
		return nil, domain.NewPreconditionError(domain.ResourceContainer, name, "add", domain.ErrImageNotAvailable)
	}

	c := NewContainer(name, image, spec, m.runtime, m.recorder, m.log)
	if err := m.containers.Add(name, c); err != nil {
		log.Warn().Msg("container already registered")
		return nil, domain.NewPreconditionError(domain.ResourceContainer, name, "add", domain.ErrAlreadyRegistered)
	}

	log.Debug().Str("image", image.Name()).Msg("container registered")
	return c, nil
}

// Remove unregisters the container. The runtime container is left untouched.
func (m *Manager) Remove(ctx context.Context, name string) error {
	_, log := m.ctx(ctx, "RemoveContainer", name)

	if _, err := m.containers.Remove(name); err != nil {
		log.Warn().Msg("container not registered")
		return domain.NewPreconditionError(domain.ResourceContainer, name, "remove", domain.ErrNotRegistered)
	}

	log.Debug().Msg("container unregistered")
	return nil
}

func (m *Manager) Get(name string) (*Container, bool) {
	return m.containers.Get(name)
}

func (m *Manager) Names() []string {
	return m.containers.Names()
}

// All returns the registered containers in insertion order.
func (m *Manager) All() []*Container {
	entries := m.containers.Snapshot()
	all := make([]*Container, 0, len(entries))
	for _, e := range entries {
		all = append(all, e.Value)
	}
	return all
}

// CreateAll creates every registered container from its stored spec. A
// container that already has an ID fails with a precondition error.
func (m *Manager) CreateAll(ctx context.Context) domain.BulkResult {
	return m.each(ctx, "CreateAll", func(c *Container, ctx context.Context) error {
		return c.Create(ctx, domain.ContainerSpec{})
	})
}

// AdoptAll binds every registered container to a same-named container left
// over from an earlier run. Containers with nothing to adopt succeed unbound.
func (m *Manager) AdoptAll(ctx context.Context) domain.BulkResult {
	return m.each(ctx, "AdoptAll", func(c *Container, ctx context.Context) error {
		_, err := c.Adopt(ctx)
		return err
	})
}

// StartAll attempts to start every registered container.
func (m *Manager) StartAll(ctx context.Context) domain.BulkResult {
	return m.each(ctx, "StartAll", (*Container).Start)
}

// StopAll attempts to stop every registered container.
func (m *Manager) StopAll(ctx context.Context) domain.BulkResult {
	return m.each(ctx, "StopAll", (*Container).Stop)
}

func (m *Manager) RestartAll(ctx context.Context) domain.BulkResult {
	return m.each(ctx, "RestartAll", (*Container).Restart)
}

func (m *Manager) PauseAll(ctx context.Context) domain.BulkResult {
	return m.each(ctx, "PauseAll", (*Container).Pause)
}

func (m *Manager) UnpauseAll(ctx context.Context) domain.BulkResult {
	return m.each(ctx, "UnpauseAll", (*Container).Unpause)
}

// RemoveAll removes every registered container from the runtime. The
// containers stay registered and can be created again.
func (m *Manager) RemoveAll(ctx context.Context, force bool) domain.BulkResult {
	return m.each(ctx, "RemoveAll", func(c *Container, ctx context.Context) error {
		return c.Remove(ctx, force)
	})
}

// LogsAll collects the logs of every container.
func (m *Manager) LogsAll(ctx context.Context, tail int) (map[string]string, domain.BulkResult) {
	return collect(ctx, m, "LogsAll", func(c *Container, ctx context.Context) (string, error) {
		return c.Logs(ctx, tail)
	})
}

// ExecAll runs cmd in every container.
func (m *Manager) ExecAll(ctx context.Context, cmd []string) (map[string]*domain.ExecResult, domain.BulkResult) {
	return collect(ctx, m, "ExecAll", func(c *Container, ctx context.Context) (*domain.ExecResult, error) {
		return c.Exec(ctx, cmd)
	})
}

func (m *Manager) InspectAll(ctx context.Context) (map[string]*domain.ContainerInfo, domain.BulkResult) {
	return collect(ctx, m, "InspectAll", (*Container).Inspect)
}

func (m *Manager) StatsAll(ctx context.Context) (map[string]*domain.ContainerStats, domain.BulkResult) {
	return collect(ctx, m, "StatsAll", (*Container).ResourceUsage)
}

// each applies fn to every container. A failing container never stops the loop.
func (m *Manager) each(ctx context.Context, action string, fn func(*Container, context.Context) error) domain.BulkResult {
	ctx, log := m.ctx(ctx, action, "")
	all := m.All()
	result := make(domain.BulkResult, len(all))
	for _, c := range all {
		result[c.Name()] = fn(c, ctx)
	}
	logBulk(log, action, result)
	return result
}

func collect[T any](ctx context.Context, m *Manager, action string, fn func(*Container, context.Context) (T, error)) (map[string]T, domain.BulkResult) {
	ctx, log := m.ctx(ctx, action, "")
	all := m.All()
	values := make(map[string]T, len(all))
	result := make(domain.BulkResult, len(all))
	for _, c := range all {
		v, err := fn(c, ctx)
		result[c.Name()] = err
		if err == nil {
			values[c.Name()] = v
		}
	}
	logBulk(log, action, result)
	return values, result
}

func logBulk(log zerowrap.Logger, op string, result domain.BulkResult) {
	ev := log.Info()
	if !result.AllOK() {
		ev = log.Warn().Strs("failed", result.Failed())
	}
	ev.Str("op", op).
		Int(zerowrap.FieldCount, len(result)).
		Str("outcome", string(result.Outcome())).
		Msg("bulk container operation finished")
}
