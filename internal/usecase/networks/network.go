// Package networks implements the network resource and its manager.
package networks

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/zerowrap"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
)

// Network is one virtual network. It takes container IDs directly and knows
// nothing about the container registry.
type Network struct {
	spec     domain.NetworkSpec
	runtime  out.NetworkRuntime
	recorder out.OperationRecorder
	log      zerowrap.Logger

	mu sync.RWMutex
	id string
}

// NewNetwork creates an unrealized network. The driver defaults to bridge.
func NewNetwork(spec domain.NetworkSpec, rt out.NetworkRuntime, recorder out.OperationRecorder, log zerowrap.Logger) *Network {
	return &Network{
		spec:     spec.WithDefaults(),
		runtime:  rt,
		recorder: recorder,
		log:      log,
	}
}

func (n *Network) Name() string {
	return n.spec.Name
}

func (n *Network) Spec() domain.NetworkSpec {
	return n.spec
}

func (n *Network) ID() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.id
}

func (n *Network) Created() bool {
	return n.ID() != ""
}

// Create creates the network on the runtime and stores its ID.
func (n *Network) Create(ctx context.Context) error {
	ctx, log := n.begin(ctx, "create")

	if n.Created() {
		log.Warn().Str("network_id", n.ID()).Msg("network already created")
		return n.fail(ctx, domain.NewPreconditionError(domain.ResourceNetwork, n.spec.Name, "create", domain.ErrAlreadyCreated))
	}

	spec := n.spec
	spec.Labels = domain.ManagedLabels(domain.ResourceNetwork, spec.Name, spec.Labels)

	log.Info().Str("driver", spec.Driver).Msg("creating network")
	id, err := n.runtime.CreateNetwork(ctx, &spec)
	if err != nil {
		log.Error().Err(err).Msg("failed to create network")
		return n.fail(ctx, domain.NewRemoteError(domain.ResourceNetwork, n.spec.Name, "create", err))
	}

	n.mu.Lock()
	n.id = id
	n.mu.Unlock()

	log.Info().Str("network_id", id).Msg("network created")
	return n.done(ctx, "create")
}

// Adopt binds the network to an existing runtime network with the same name
// and reports whether one was found. Networks infradeploy did not create are
// refused with ErrNotManaged.
func (n *Network) Adopt(ctx context.Context) (bool, error) {
	ctx, log := n.begin(ctx, "adopt")

	if n.Created() {
		return true, nil
	}

	info, err := n.runtime.InspectNetwork(ctx, n.spec.Name)
	if errors.Is(err, domain.ErrNetworkNotFound) {
		log.Debug().Msg("no existing network to adopt")
		return false, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to look up existing network")
		return false, n.fail(ctx, domain.NewRemoteError(domain.ResourceNetwork, n.spec.Name, "adopt", err))
	}
	if !domain.IsManagedBy(info.Labels, domain.ResourceNetwork, n.spec.Name) {
		log.Warn().Str("network_id", info.ID).Msg("existing network is not managed by infradeploy")
		return false, n.fail(ctx, domain.NewPreconditionError(domain.ResourceNetwork, n.spec.Name, "adopt", domain.ErrNotManaged))
	}

	n.mu.Lock()
	n.id = info.ID
	n.mu.Unlock()

	log.Info().Str("network_id", info.ID).Msg("network adopted")
	return true, n.done(ctx, "adopt")
}

func (n *Network) Connect(ctx context.Context, containerID string) error {
	return n.call(ctx, "connect", func(ctx context.Context, id string) error {
		return n.runtime.ConnectNetwork(ctx, id, containerID)
	}, containerID)
}

func (n *Network) Disconnect(ctx context.Context, containerID string) error {
	return n.call(ctx, "disconnect", func(ctx context.Context, id string) error {
		return n.runtime.DisconnectNetwork(ctx, id, containerID, false)
	}, containerID)
}

func (n *Network) Inspect(ctx context.Context) (*domain.NetworkInfo, error) {
	var info *domain.NetworkInfo
	err := n.call(ctx, "inspect", func(ctx context.Context, id string) error {
		var err error
		info, err = n.runtime.InspectNetwork(ctx, id)
		return err
	})
	return info, err
}

// ConnectedContainers asks the runtime which containers are attached right now.
func (n *Network) ConnectedContainers(ctx context.Context) ([]string, error) {
	info, err := n.Inspect(ctx)
	if err != nil {
		return nil, err
	}
	return info.Containers, nil
}

// Remove deletes the network and clears its ID.
func (n *Network) Remove(ctx context.Context) error {
	err := n.call(ctx, "remove", func(ctx context.Context, id string) error {
		return n.runtime.RemoveNetwork(ctx, id)
	})
	if err != nil {
		return err
	}

	n.mu.Lock()
	n.id = ""
	n.mu.Unlock()
	return nil
}

// call runs fn against the network ID. Without an ID the runtime is never contacted.
func (n *Network) call(ctx context.Context, op string, fn func(ctx context.Context, id string) error, containerID ...string) error {
	ctx, log := n.begin(ctx, op)
	if len(containerID) > 0 {
		ctx = zerowrap.CtxWithFields(ctx, map[string]any{"container_id": containerID[0]})
		log = zerowrap.FromCtx(ctx)
	}

	id := n.ID()
	if id == "" {
		log.Warn().Msg("network has not been created yet")
		return n.fail(ctx, domain.NewPreconditionError(domain.ResourceNetwork, n.spec.Name, op, domain.ErrNetworkNotCreated))
	}

	if err := fn(ctx, id); err != nil {
		log.Error().Err(err).Str("network_id", id).Msg("network operation failed")
		return n.fail(ctx, domain.NewRemoteError(domain.ResourceNetwork, n.spec.Name, op, err))
	}

	log.Debug().Str("network_id", id).Msg("network operation succeeded")
	return n.done(ctx, op)
}

func (n *Network) begin(ctx context.Context, action string) (context.Context, zerowrap.Logger) {
	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, n.log), map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  action,
		zerowrap.FieldEntityID: n.spec.Name,
	})
	return ctx, zerowrap.FromCtx(ctx)
}

func (n *Network) fail(ctx context.Context, err *domain.OpError) error {
	if n.recorder != nil {
		n.recorder.RecordOperation(ctx, domain.ResourceNetwork, err.Op, err)
	}
	return err
}

func (n *Network) done(ctx context.Context, op string) error {
	if n.recorder != nil {
		n.recorder.RecordOperation(ctx, domain.ResourceNetwork, op, nil)
	}
	return nil
}
