package images

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/zerowrap"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/pkg/registry"
)

// Config holds the manager settings.
type Config struct {
	// DefaultRegistry is used by PushAll when no registry is given.
	DefaultRegistry string
	// PullConcurrency bounds the number of parallel pulls in PullAll. Values
	// below 2 pull serially.
	PullConcurrency int
}

// Manager owns a named set of images.
type Manager struct {
	runtime  out.ImageRuntime
	store    out.NameListStore
	recorder out.OperationRecorder
	log      zerowrap.Logger

	images *registry.Registry[*Image]

	mu              sync.RWMutex
	defaultRegistry string
	pullConcurrency int
}

// NewManager creates an empty image manager. recorder may be nil.
func NewManager(
	rt out.ImageRuntime,
	store out.NameListStore,
	recorder out.OperationRecorder,
	cfg Config,
	log zerowrap.Logger,
) *Manager {
	return &Manager{
		runtime:         rt,
		store:           store,
		recorder:        recorder,
		log:             log,
		images:          registry.New[*Image](),
		defaultRegistry: cfg.DefaultRegistry,
		pullConcurrency: cfg.PullConcurrency,
	}
}

func (m *Manager) ctx(ctx context.Context, action string, fields map[string]any) (context.Context, zerowrap.Logger) {
	all := map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: action,
	}
	for k, v := range fields {
		all[k] = v
	}
	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, m.log), all)
	return ctx, zerowrap.FromCtx(ctx)
}

// Add registers a new image built from spec. A name that is already
// registered is rejected and the existing image is kept.
func (m *Manager) Add(ctx context.Context, spec domain.ImageSpec) (*Image, error) {
	_, log := m.ctx(ctx, "AddImage", map[string]any{zerowrap.FieldEntityID: spec.Name})

	img := NewImage(spec, m.runtime, m.recorder, m.log)
	if err := m.images.Add(spec.Name, img); err != nil {
		log.Warn().Msg("image already registered")
		return nil, domain.NewPreconditionError(domain.ResourceImage, spec.Name, "add", domain.ErrAlreadyRegistered)
	}

	log.Debug().Str(zerowrap.FieldPath, spec.BuildPath).Msg("image registered")
	return img, nil
}

// Remove unregisters the image. The local image itself is left untouched.
func (m *Manager) Remove(ctx context.Context, name string) error {
	_, log := m.ctx(ctx, "RemoveImage", map[string]any{zerowrap.FieldEntityID: name})

	if _, err := m.images.Remove(name); err != nil {
		log.Warn().Msg("image not registered")
		return domain.NewPreconditionError(domain.ResourceImage, name, "remove", domain.ErrNotRegistered)
	}

	log.Debug().Msg("image unregistered")
	return nil
}

// Get returns the image registered under name.
func (m *Manager) Get(name string) (*Image, bool) {
	return m.images.Get(name)
}

// Names returns the registered image names in insertion order.
func (m *Manager) Names() []string {
	return m.images.Names()
}

// ListAll returns the status of every registered image in insertion order.
func (m *Manager) ListAll() []domain.ImageStatus {
	entries := m.images.Snapshot()
	statuses := make([]domain.ImageStatus, 0, len(entries))
	for _, e := range entries {
		statuses = append(statuses, e.Value.Status())
	}
	return statuses
}

// SetDefaultRegistry changes the registry PushAll uses when none is given.
func (m *Manager) SetDefaultRegistry(registry string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRegistry = registry
}

func (m *Manager) DefaultRegistry() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultRegistry
}

// PullAll pulls every registered image. Failures are recorded per image and
// never stop the remaining pulls.
func (m *Manager) PullAll(ctx context.Context) domain.BulkResult {
	ctx, log := m.ctx(ctx, "PullAll", nil)
	entries := m.images.Snapshot()
	result := make(domain.BulkResult, len(entries))

	if m.pullConcurrency < 2 {
		for _, e := range entries {
			result[e.Name] = e.Value.Pull(ctx)
		}
	} else {
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(m.pullConcurrency)
		for _, e := range entries {
			g.Go(func() error {
				err := e.Value.Pull(gctx)
				mu.Lock()
				result[e.Name] = err
				mu.Unlock()
				// Errors stay in result so the group never cancels gctx.
				return nil
			})
		}
		_ = g.Wait()
	}

	logBulk(log, "pull", result)
	return result
}

// BuildAll builds every image that has a build path. Images without one are
// left out of the result.
func (m *Manager) BuildAll(ctx context.Context) domain.BulkResult {
	ctx, log := m.ctx(ctx, "BuildAll", nil)
	result := make(domain.BulkResult)

	for _, e := range m.images.Snapshot() {
		if e.Value.BuildPath() == "" {
			continue
		}
		result[e.Name] = e.Value.Build(ctx)
	}

	logBulk(log, "build", result)
	return result
}

// PushAll pushes every tagged image to registry, or to the default registry
// when registry is empty. Untagged images are left out of the result.
func (m *Manager) PushAll(ctx context.Context, registry string) domain.BulkResult {
	if registry == "" {
		registry = m.DefaultRegistry()
	}
	ctx, log := m.ctx(ctx, "PushAll", map[string]any{"registry": registry})
	result := make(domain.BulkResult)

	for _, e := range m.images.Snapshot() {
		if !e.Value.State().Tagged {
			log.Debug().Str(zerowrap.FieldEntityID, e.Name).Msg("skipping untagged image")
			continue
		}
		result[e.Name] = e.Value.Push(ctx, registry)
	}

	logBulk(log, "push", result)
	return result
}

// SaveState persists the registered image names to path.
func (m *Manager) SaveState(ctx context.Context, path string) error {
	ctx, log := m.ctx(ctx, "SaveState", map[string]any{zerowrap.FieldPath: path})

	names := m.images.Names()
	if err := m.store.Save(ctx, path, names); err != nil {
		log.Error().Err(err).Msg("failed to save image state")
		return domain.NewConfigError(domain.ResourceImage, path, "save", errors.Join(domain.ErrStateSaveFailed, err))
	}

	log.Info().Int(zerowrap.FieldCount, len(names)).Msg("image state saved")
	return nil
}

// LoadState registers a placeholder image for every name stored at path.
// Placeholders carry only a name and start with every state flag false.
// Names already registered are skipped. If the file cannot be read the
// registry is left unchanged.
func (m *Manager) LoadState(ctx context.Context, path string) error {
	ctx, log := m.ctx(ctx, "LoadState", map[string]any{zerowrap.FieldPath: path})

	names, err := m.store.Load(ctx, path)
	if err != nil {
		log.Error().Err(err).Msg("failed to load image state")
		return domain.NewConfigError(domain.ResourceImage, path, "load", errors.Join(domain.ErrStateLoadFailed, err))
	}

	added := 0
	for _, name := range names {
		if err := m.images.Add(name, NewImage(domain.ImageSpec{Name: name}, m.runtime, m.recorder, m.log)); err != nil {
			log.Warn().Str(zerowrap.FieldEntityID, name).Msg("image already registered, skipping")
			continue
		}
		added++
	}

	log.Info().Int(zerowrap.FieldCount, added).Msg("image state loaded")
	return nil
}

func logBulk(log zerowrap.Logger, op string, result domain.BulkResult) {
	ev := log.Info()
	if !result.AllOK() {
		ev = log.Warn().Strs("failed", result.Failed())
	}
	ev.Str("op", op).
		Int(zerowrap.FieldCount, len(result)).
		Str("outcome", string(result.Outcome())).
		Msg("bulk image operation finished")
}
