package docker

import (
	"context"
	"sort"

	"github.com/bnema/zerowrap"
	"github.com/docker/docker/api/types/network"

	"github.com/bnema/infradeploy/internal/domain"
)

// CreateNetwork creates a network and returns its ID.
func (r *Runtime) CreateNetwork(ctx context.Context, spec *domain.NetworkSpec) (string, error) {
	ctx, log := adapterCtx(ctx, "CreateNetwork", map[string]any{
		"network": spec.Name,
		"driver":  spec.Driver,
	})

	enableIPv6 := spec.EnableIPv6
	opts := network.CreateOptions{
		Driver:     spec.Driver,
		EnableIPv6: &enableIPv6,
		Internal:   spec.Internal,
		Attachable: spec.Attachable,
		Ingress:    spec.Ingress,
		Options:    spec.Options,
		Labels:     spec.Labels,
		IPAM:       ipamConfig(spec.IPAM),
	}

	resp, err := r.client.NetworkCreate(ctx, spec.Name, opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to create network")
		return "", classify(err, nil, domain.ErrAlreadyCreated)
	}
	if resp.Warning != "" {
		log.Warn().Str("warning", resp.Warning).Msg("engine warning on network create")
	}

	log.Info().Str(zerowrap.FieldEntityID, resp.ID).Msg("network created")
	return resp.ID, nil
}

// InspectNetwork returns the runtime view of a network.
func (r *Runtime) InspectNetwork(ctx context.Context, networkID string) (*domain.NetworkInfo, error) {
	ctx, log := adapterCtx(ctx, "InspectNetwork", map[string]any{zerowrap.FieldEntityID: networkID})

	resp, err := r.client.NetworkInspect(ctx, networkID, network.InspectOptions{})
	if err != nil {
		log.Debug().Err(err).Msg("failed to inspect network")
		return nil, classify(err, domain.ErrNetworkNotFound, nil)
	}

	info := &domain.NetworkInfo{
		ID:         resp.ID,
		Name:       resp.Name,
		Driver:     resp.Driver,
		Internal:   resp.Internal,
		Attachable: resp.Attachable,
		Ingress:    resp.Ingress,
		EnableIPv6: resp.EnableIPv6,
		Labels:     resp.Labels,
	}
	for containerID := range resp.Containers {
		info.Containers = append(info.Containers, containerID)
	}
	sort.Strings(info.Containers)
	return info, nil
}

// ConnectNetwork attaches a container to a network.
func (r *Runtime) ConnectNetwork(ctx context.Context, networkID, containerID string) error {
	ctx, log := adapterCtx(ctx, "ConnectNetwork", map[string]any{
		zerowrap.FieldEntityID: networkID,
		"container_id":         containerID,
	})

	if err := r.client.NetworkConnect(ctx, networkID, containerID, nil); err != nil {
		log.Error().Err(err).Msg("failed to connect container to network")
		return classify(err, domain.ErrNetworkNotFound, nil)
	}

	log.Info().Msg("container connected to network")
	return nil
}

// DisconnectNetwork detaches a container from a network.
func (r *Runtime) DisconnectNetwork(ctx context.Context, networkID, containerID string, force bool) error {
	ctx, log := adapterCtx(ctx, "DisconnectNetwork", map[string]any{
		zerowrap.FieldEntityID: networkID,
		"container_id":         containerID,
	})

	if err := r.client.NetworkDisconnect(ctx, networkID, containerID, force); err != nil {
		log.Error().Err(err).Msg("failed to disconnect container from network")
		return classify(err, domain.ErrNetworkNotFound, nil)
	}

	log.Info().Msg("container disconnected from network")
	return nil
}

// RemoveNetwork deletes a network.
func (r *Runtime) RemoveNetwork(ctx context.Context, networkID string) error {
	ctx, log := adapterCtx(ctx, "RemoveNetwork", map[string]any{zerowrap.FieldEntityID: networkID})

	if err := r.client.NetworkRemove(ctx, networkID); err != nil {
		log.Error().Err(err).Msg("failed to remove network")
		return classify(err, domain.ErrNetworkNotFound, nil)
	}

	log.Info().Msg("network removed")
	return nil
}

func ipamConfig(spec *domain.IPAMSpec) *network.IPAM {
	if spec == nil {
		return nil
	}
	ipam := &network.IPAM{
		Driver:  spec.Driver,
		Options: spec.Options,
	}
	for _, pool := range spec.Pools {
		ipam.Config = append(ipam.Config, network.IPAMConfig{
			Subnet:     pool.Subnet,
			IPRange:    pool.IPRange,
			Gateway:    pool.Gateway,
			AuxAddress: pool.AuxAddresses,
		})
	}
	return ipam
}
