// Package volumes implements the volume resource and its manager. Removal is
// guarded: a volume mounted by any container is never removed.
package volumes

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/zerowrap"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
)

// Volume is one named volume.
type Volume struct {
	spec     domain.VolumeSpec
	runtime  out.VolumeRuntime
	recorder out.OperationRecorder
	log      zerowrap.Logger

	mu sync.RWMutex
	id string
}

// NewVolume creates an unrealized volume. The driver defaults to local.
func NewVolume(spec domain.VolumeSpec, rt out.VolumeRuntime, recorder out.OperationRecorder, log zerowrap.Logger) *Volume {
	return &Volume{
		spec:     spec.WithDefaults(),
		runtime:  rt,
		recorder: recorder,
		log:      log,
	}
}

func (v *Volume) Name() string {
	return v.spec.Name
}

func (v *Volume) Spec() domain.VolumeSpec {
	return v.spec
}

func (v *Volume) ID() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.id
}

func (v *Volume) Created() bool {
	return v.ID() != ""
}

func (v *Volume) Create(ctx context.Context) error {
	ctx, log := v.begin(ctx, "create")

	if v.Created() {
		log.Warn().Msg("volume already created")
		return v.fail(ctx, domain.NewPreconditionError(domain.ResourceVolume, v.spec.Name, "create", domain.ErrAlreadyCreated))
	}

	spec := v.spec
	spec.Labels = domain.ManagedLabels(domain.ResourceVolume, spec.Name, spec.Labels)

	log.Info().Str("driver", spec.Driver).Msg("creating volume")
	id, err := v.runtime.CreateVolume(ctx, &spec)
	if err != nil {
		log.Error().Err(err).Msg("failed to create volume")
		return v.fail(ctx, domain.NewRemoteError(domain.ResourceVolume, v.spec.Name, "create", err))
	}

	v.mu.Lock()
	v.id = id
	v.mu.Unlock()

	log.Info().Str("volume_id", id).Msg("volume created")
	return v.done(ctx, "create")
}

// Adopt binds the volume to an existing runtime volume with the same name and
// reports whether one was found. Volumes infradeploy did not create are
// refused with ErrNotManaged.
func (v *Volume) Adopt(ctx context.Context) (bool, error) {
	ctx, log := v.begin(ctx, "adopt")

	if v.Created() {
		return true, nil
	}

	info, err := v.runtime.InspectVolume(ctx, v.spec.Name)
	if errors.Is(err, domain.ErrVolumeNotFound) {
		log.Debug().Msg("no existing volume to adopt")
		return false, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to look up existing volume")
		return false, v.fail(ctx, domain.NewRemoteError(domain.ResourceVolume, v.spec.Name, "adopt", err))
	}
	if !domain.IsManagedBy(info.Labels, domain.ResourceVolume, v.spec.Name) {
		log.Warn().Msg("existing volume is not managed by infradeploy")
		return false, v.fail(ctx, domain.NewPreconditionError(domain.ResourceVolume, v.spec.Name, "adopt", domain.ErrNotManaged))
	}

	v.mu.Lock()
	v.id = info.Name
	v.mu.Unlock()

	log.Info().Msg("volume adopted")
	return true, v.done(ctx, "adopt")
}

func (v *Volume) Inspect(ctx context.Context) (*domain.VolumeInfo, error) {
	var info *domain.VolumeInfo
	err := v.call(ctx, "inspect", func(ctx context.Context, id string) error {
		var err error
		info, err = v.runtime.InspectVolume(ctx, id)
		return err
	})
	return info, err
}

// Users returns the IDs of the containers mounting the volume, as reported by
// the runtime at call time.
func (v *Volume) Users(ctx context.Context) ([]string, error) {
	var users []string
	err := v.call(ctx, "in_use", func(ctx context.Context, id string) error {
		var err error
		users, err = v.runtime.VolumeUsers(ctx, id)
		return err
	})
	return users, err
}

// InUse reports whether any container, running or stopped, mounts the volume.
func (v *Volume) InUse(ctx context.Context) (bool, error) {
	users, err := v.Users(ctx)
	if err != nil {
		return false, err
	}
	return len(users) > 0, nil
}

// Remove deletes the volume and clears its ID. It does not check InUse; the
// manager does that immediately before calling it.
func (v *Volume) Remove(ctx context.Context) error {
	err := v.call(ctx, "remove", func(ctx context.Context, id string) error {
		return v.runtime.RemoveVolume(ctx, id, false)
	})
	if err != nil {
		return err
	}

	v.mu.Lock()
	v.id = ""
	v.mu.Unlock()
	return nil
}

func (v *Volume) call(ctx context.Context, op string, fn func(ctx context.Context, id string) error) error {
	ctx, log := v.begin(ctx, op)

	id := v.ID()
	if id == "" {
		log.Warn().Msg("volume has not been created yet")
		return v.fail(ctx, domain.NewPreconditionError(domain.ResourceVolume, v.spec.Name, op, domain.ErrVolumeNotCreated))
	}

	if err := fn(ctx, id); err != nil {
		log.Error().Err(err).Str("volume_id", id).Msg("volume operation failed")
		return v.fail(ctx, domain.NewRemoteError(domain.ResourceVolume, v.spec.Name, op, err))
	}
	return v.done(ctx, op)
}

func (v *Volume) begin(ctx context.Context, action string) (context.Context, zerowrap.Logger) {
	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, v.log), map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  action,
		zerowrap.FieldEntityID: v.spec.Name,
	})
	return ctx, zerowrap.FromCtx(ctx)
}

func (v *Volume) fail(ctx context.Context, err *domain.OpError) error {
	if v.recorder != nil {
		v.recorder.RecordOperation(ctx, domain.ResourceVolume, err.Op, err)
	}
	return err
}

func (v *Volume) done(ctx context.Context, op string) error {
	if v.recorder != nil {
		v.recorder.RecordOperation(ctx, domain.ResourceVolume, op, nil)
	}
	return nil
}
