package networks

import (
	"context"

	"github.com/bnema/zerowrap"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/pkg/registry"
)

// Manager owns a named set of networks.
type Manager struct {
	runtime  out.NetworkRuntime
	recorder out.OperationRecorder
	log      zerowrap.Logger
	networks *registry.Registry[*Network]
}

// NewManager creates an empty network manager. recorder may be nil.
func NewManager(rt out.NetworkRuntime, recorder out.OperationRecorder, log zerowrap.Logger) *Manager {
	return &Manager{
		runtime:  rt,
		recorder: recorder,
		log:      log,
		networks: registry.New[*Network](),
	}
}

// Add registers an unrealized network. A name that is already registered is
// rejected and the existing network is kept.
func (m *Manager) Add(ctx context.Context, spec domain.NetworkSpec) (*Network, error) {
	log := m.logger(ctx, "AddNetwork", spec.Name)

	n := NewNetwork(spec, m.runtime, m.recorder, m.log)
	if err := m.networks.Add(spec.Name, n); err != nil {
		log.Warn().Msg("network already registered")
		return nil, domain.NewPreconditionError(domain.ResourceNetwork, spec.Name, "add", domain.ErrAlreadyRegistered)
	}

	log.Debug().Str("driver", n.Spec().Driver).Msg("network registered")
	return n, nil
}

// Remove unregisters the network. The runtime network is left untouched.
func (m *Manager) Remove(ctx context.Context, name string) error {
	log := m.logger(ctx, "RemoveNetwork", name)

	if _, err := m.networks.Remove(name); err != nil {
		log.Warn().Msg("network not registered")
		return domain.NewPreconditionError(domain.ResourceNetwork, name, "remove", domain.ErrNotRegistered)
	}

	log.Debug().Msg("network unregistered")
	return nil
}

func (m *Manager) Get(name string) (*Network, bool) {
	return m.networks.Get(name)
}

func (m *Manager) Names() []string {
	return m.networks.Names()
}

// All returns the registered networks in insertion order.
func (m *Manager) All() []*Network {
	entries := m.networks.Snapshot()
	all := make([]*Network, 0, len(entries))
	for _, e := range entries {
		all = append(all, e.Value)
	}
	return all
}

// CreateAll attempts to create every registered network.
func (m *Manager) CreateAll(ctx context.Context) domain.BulkResult {
	return m.each(ctx, "CreateAll", (*Network).Create)
}

// AdoptAll binds every registered network to a same-named network left over
// from an earlier run.
func (m *Manager) AdoptAll(ctx context.Context) domain.BulkResult {
	return m.each(ctx, "AdoptAll", func(n *Network, ctx context.Context) error {
		_, err := n.Adopt(ctx)
		return err
	})
}

// RemoveAll attempts to remove every registered network. The networks stay
// registered.
func (m *Manager) RemoveAll(ctx context.Context) domain.BulkResult {
	return m.each(ctx, "RemoveAll", (*Network).Remove)
}

func (m *Manager) each(ctx context.Context, action string, fn func(*Network, context.Context) error) domain.BulkResult {
	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, m.log), map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: action,
	})
	log := zerowrap.FromCtx(ctx)

	all := m.All()
	result := make(domain.BulkResult, len(all))
	for _, n := range all {
		result[n.Name()] = fn(n, ctx)
	}

	ev := log.Info()
	if !result.AllOK() {
		ev = log.Warn().Strs("failed", result.Failed())
	}
	ev.Int(zerowrap.FieldCount, len(result)).Str("outcome", string(result.Outcome())).Msg("bulk network operation finished")
	return result
}

func (m *Manager) logger(ctx context.Context, action, name string) zerowrap.Logger {
	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, m.log), map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  action,
		zerowrap.FieldEntityID: name,
	})
	return zerowrap.FromCtx(ctx)
}
