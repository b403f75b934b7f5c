package docker

import (
	"context"

	"github.com/bnema/zerowrap"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/volume"

	"github.com/bnema/infradeploy/internal/domain"
)

// CreateVolume creates a named volume and returns its name.
func (r *Runtime) CreateVolume(ctx context.Context, spec *domain.VolumeSpec) (string, error) {
	ctx, log := adapterCtx(ctx, "CreateVolume", map[string]any{
		"volume": spec.Name,
		"driver": spec.Driver,
	})

	vol, err := r.client.VolumeCreate(ctx, volume.CreateOptions{
		Name:       spec.Name,
		Driver:     spec.Driver,
		DriverOpts: spec.DriverOpts,
		Labels:     spec.Labels,
	})
	if err != nil {
		return "", log.WrapErr(err, "failed to create volume")
	}

	log.Info().Str(zerowrap.FieldPath, vol.Mountpoint).Msg("volume created")
	return vol.Name, nil
}

// InspectVolume returns the runtime view of a volume.
func (r *Runtime) InspectVolume(ctx context.Context, name string) (*domain.VolumeInfo, error) {
	ctx, log := adapterCtx(ctx, "InspectVolume", map[string]any{"volume": name})

	vol, err := r.client.VolumeInspect(ctx, name)
	if err != nil {
		log.Debug().Err(err).Msg("failed to inspect volume")
		return nil, classify(err, domain.ErrVolumeNotFound, nil)
	}

	return &domain.VolumeInfo{
		Name:       vol.Name,
		Driver:     vol.Driver,
		Mountpoint: vol.Mountpoint,
		CreatedAt:  vol.CreatedAt,
		Scope:      vol.Scope,
		Labels:     vol.Labels,
		Options:    vol.Options,
	}, nil
}

// VolumeUsers lists the IDs of all containers, stopped ones included, that
// mount the volume.
func (r *Runtime) VolumeUsers(ctx context.Context, name string) ([]string, error) {
	ctx, log := adapterCtx(ctx, "VolumeUsers", map[string]any{"volume": name})

	containers, err := r.client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("volume", name)),
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to list volume users")
	}

	ids := make([]string, 0, len(containers))
	for _, c := range containers {
		ids = append(ids, c.ID)
	}
	log.Debug().Int(zerowrap.FieldCount, len(ids)).Msg("volume users listed")
	return ids, nil
}

// RemoveVolume deletes a volume. The engine refuses while a container uses it.
func (r *Runtime) RemoveVolume(ctx context.Context, name string, force bool) error {
	ctx, log := adapterCtx(ctx, "RemoveVolume", map[string]any{
		"volume": name,
		"force":  force,
	})

	if err := r.client.VolumeRemove(ctx, name, force); err != nil {
		log.Error().Err(err).Msg("failed to remove volume")
		return classify(err, domain.ErrVolumeNotFound, domain.ErrVolumeInUse)
	}

	log.Info().Msg("volume removed")
	return nil
}
