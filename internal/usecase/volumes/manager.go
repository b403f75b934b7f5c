package volumes

import (
	"context"

	"github.com/bnema/zerowrap"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/pkg/registry"
)

// Manager owns a named set of volumes.
type Manager struct {
	runtime  out.VolumeRuntime
	recorder out.OperationRecorder
	log      zerowrap.Logger
	volumes  *registry.Registry[*Volume]
}

// NewManager creates an empty volume manager. recorder may be nil.
func NewManager(rt out.VolumeRuntime, recorder out.OperationRecorder, log zerowrap.Logger) *Manager {
	return &Manager{
		runtime:  rt,
		recorder: recorder,
		log:      log,
		volumes:  registry.New[*Volume](),
	}
}

// Add registers an unrealized volume. A name that is already registered is
// rejected and the existing volume is kept.
func (m *Manager) Add(ctx context.Context, spec domain.VolumeSpec) (*Volume, error) {
	_, log := m.ctx(ctx, "AddVolume", spec.Name)

	v := NewVolume(spec, m.runtime, m.recorder, m.log)
	if err := m.volumes.Add(spec.Name, v); err != nil {
		log.Warn().Msg("volume already registered")
		return nil, domain.NewPreconditionError(domain.ResourceVolume, spec.Name, "add", domain.ErrAlreadyRegistered)
	}

	log.Debug().Msg("volume registered")
	return v, nil
}

func (m *Manager) Get(name string) (*Volume, bool) {
	return m.volumes.Get(name)
}

func (m *Manager) Names() []string {
	return m.volumes.Names()
}

// All returns the registered volumes in insertion order.
func (m *Manager) All() []*Volume {
	entries := m.volumes.Snapshot()
	all := make([]*Volume, 0, len(entries))
	for _, e := range entries {
		all = append(all, e.Value)
	}
	return all
}

// RemoveVolume removes the named volume from the runtime and unregisters it.
// The volume stays registered when it is in use or when removal fails. A
// volume that was never created is only unregistered.
func (m *Manager) RemoveVolume(ctx context.Context, name string) error {
	ctx, log := m.ctx(ctx, "RemoveVolume", name)

	v, ok := m.volumes.Get(name)
	if !ok {
		log.Warn().Msg("volume not registered")
		return domain.NewPreconditionError(domain.ResourceVolume, name, "remove", domain.ErrNotRegistered)
	}

	if v.Created() {
		if err := m.removeIfUnused(ctx, v); err != nil {
			return err
		}
	}

	if _, err := m.volumes.Remove(name); err != nil {
		return domain.NewPreconditionError(domain.ResourceVolume, name, "remove", domain.ErrNotRegistered)
	}
	log.Info().Msg("volume removed")
	return nil
}

// CreateAll attempts to create every registered volume.
func (m *Manager) CreateAll(ctx context.Context) domain.BulkResult {
	ctx, log := m.ctx(ctx, "CreateAll", "")
	result := make(domain.BulkResult)
	for _, v := range m.All() {
		result[v.Name()] = v.Create(ctx)
	}
	logBulk(log, "create", result)
	return result
}

// AdoptAll binds every registered volume to a same-named volume left over
// from an earlier run.
func (m *Manager) AdoptAll(ctx context.Context) domain.BulkResult {
	ctx, log := m.ctx(ctx, "AdoptAll", "")
	result := make(domain.BulkResult)
	for _, v := range m.All() {
		_, err := v.Adopt(ctx)
		result[v.Name()] = err
	}
	logBulk(log, "adopt", result)
	return result
}

// RemoveAll removes every registered volume that no container mounts. Volumes
// in use are skipped and reported with ErrVolumeInUse. All volumes stay
// registered.
func (m *Manager) RemoveAll(ctx context.Context) domain.BulkResult {
	ctx, log := m.ctx(ctx, "RemoveAll", "")
	result := make(domain.BulkResult)
	for _, v := range m.All() {
		result[v.Name()] = m.removeIfUnused(ctx, v)
	}
	logBulk(log, "remove", result)
	return result
}

// removeIfUnused checks InUse immediately before removing v.
func (m *Manager) removeIfUnused(ctx context.Context, v *Volume) error {
	log := zerowrap.FromCtx(ctx)

	users, err := v.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		log.Warn().Str(zerowrap.FieldEntityID, v.Name()).Strs("containers", users).Msg("volume is in use, not removing")
		opErr := domain.NewPreconditionError(domain.ResourceVolume, v.Name(), "remove", domain.ErrVolumeInUse)
		if m.recorder != nil {
			m.recorder.RecordOperation(ctx, domain.ResourceVolume, opErr.Op, opErr)
		}
		return opErr
	}
	return v.Remove(ctx)
}

func (m *Manager) ctx(ctx context.Context, action, name string) (context.Context, zerowrap.Logger) {
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

func logBulk(log zerowrap.Logger, op string, result domain.BulkResult) {
	ev := log.Info()
	if !result.AllOK() {
		ev = log.Warn().Strs("failed", result.Failed())
	}
	ev.Str("op", op).
		Int(zerowrap.FieldCount, len(result)).
		Str("outcome", string(result.Outcome())).
		Msg("bulk volume operation finished")
}
