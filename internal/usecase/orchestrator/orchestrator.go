// Package orchestrator composes the network and container managers into the
// start and stop infrastructure workflows.
package orchestrator

import (
	"context"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/internal/usecase/containers"
	"github.com/bnema/infradeploy/internal/usecase/networks"
)

// LegacyNetwork is the network every container joined before target networks
// became configurable.
const LegacyNetwork = "c2-network"

// Workflow names.
const (
	WorkflowStart = "start_infrastructure"
	WorkflowStop  = "stop_infrastructure"
)

// Step names, in execution order.
const (
	StepCreateNetworks   = "create_networks"
	StepStartContainers  = "start_containers"
	StepConnectNetworks  = "connect_networks"
	StepStopContainers   = "stop_containers"
	StepRemoveContainers = "remove_containers"
	StepRemoveNetworks   = "remove_networks"
)

const tracerName = "github.com/bnema/infradeploy/internal/usecase/orchestrator"

// Config holds orchestrator settings.
type Config struct {
	// ConnectNetworks lists the networks a container joins when its own spec
	// names none. Empty means every registered network.
	ConnectNetworks []string
}

// Orchestrator runs the infrastructure workflows. It never aborts a workflow
// on failure and never rolls back.
type Orchestrator struct {
	networks   *networks.Manager
	containers *containers.Manager
	recorder   out.OperationRecorder
	cfg        Config
	log        zerowrap.Logger
	now        func() time.Time
}

// New creates an orchestrator over the given managers. recorder may be nil.
func New(
	networkManager *networks.Manager,
	containerManager *containers.Manager,
	recorder out.OperationRecorder,
	cfg Config,
	log zerowrap.Logger,
) *Orchestrator {
	return &Orchestrator{
		networks:   networkManager,
		containers: containerManager,
		recorder:   recorder,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
	}
}

func (o *Orchestrator) Networks() *networks.Manager {
	return o.networks
}

func (o *Orchestrator) Containers() *containers.Manager {
	return o.containers
}

// StartInfrastructure creates all networks, starts all containers, then
// connects every container that has an ID to its target networks.
func (o *Orchestrator) StartInfrastructure(ctx context.Context) domain.Report {
	return o.run(ctx, WorkflowStart, []step{
		{StepCreateNetworks, o.networks.CreateAll},
		{StepStartContainers, o.containers.StartAll},
		{StepConnectNetworks, o.connectAll},
	})
}

// StopInfrastructure stops and removes all containers, then removes all
// networks, so no network is removed while containers are still attached.
func (o *Orchestrator) StopInfrastructure(ctx context.Context) domain.Report {
	return o.run(ctx, WorkflowStop, []step{
		{StepStopContainers, o.containers.StopAll},
		{StepRemoveContainers, func(ctx context.Context) domain.BulkResult {
			return o.containers.RemoveAll(ctx, false)
		}},
		{StepRemoveNetworks, o.networks.RemoveAll},
	})
}

type step struct {
	name string
	fn   func(ctx context.Context) domain.BulkResult
}

func (o *Orchestrator) run(ctx context.Context, workflow string, steps []step) domain.Report {
	report := domain.Report{
		RunID:     uuid.NewString(),
		Workflow:  workflow,
		StartedAt: o.now(),
	}

	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, o.log), map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: workflow,
		"run_id":              report.RunID,
	})
	log := zerowrap.FromCtx(ctx)

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, workflow)
	defer span.End()
	span.SetAttributes(attribute.String("infradeploy.run_id", report.RunID))

	log.Info().Msg("workflow started")
	for _, s := range steps {
		stepCtx, stepSpan := tracer.Start(ctx, s.name)
		result := s.fn(stepCtx)
		stepSpan.SetAttributes(
			attribute.Int("infradeploy.items", len(result)),
			attribute.String("infradeploy.outcome", string(result.Outcome())),
		)
		if !result.AllOK() {
			stepSpan.SetStatus(codes.Error, "step had failures")
		}
		stepSpan.End()

		report.Steps = append(report.Steps, domain.WorkflowStep{Name: s.name, Result: result})
		log.Info().
			Str("step", s.name).
			Str("outcome", string(result.Outcome())).
			Int(zerowrap.FieldCount, len(result)).
			Msg("workflow step finished")
	}
	report.FinishedAt = o.now()

	if report.Failed() {
		span.SetStatus(codes.Error, "workflow had failures")
		log.Warn().Dur(zerowrap.FieldDuration, report.Duration()).Msg("workflow finished with failures")
	} else {
		log.Info().Dur(zerowrap.FieldDuration, report.Duration()).Msg("workflow finished")
	}

	if o.recorder != nil {
		o.recorder.RecordWorkflow(ctx, report)
	}
	return report
}

// connectAll connects each container that has an ID to each of its target
// networks that has an ID. Result keys are "container/network". Pairs where
// either side is unrealized are left out; an unknown target network name is
// reported as a failure.
func (o *Orchestrator) connectAll(ctx context.Context) domain.BulkResult {
	log := zerowrap.FromCtx(ctx)
	result := make(domain.BulkResult)

	for _, c := range o.containers.All() {
		containerID := c.ID()
		if containerID == "" {
			log.Debug().Str(zerowrap.FieldEntityID, c.Name()).Msg("container has no ID, not connecting")
			continue
		}

		for _, name := range o.targets(c) {
			key := c.Name() + "/" + name
			n, ok := o.networks.Get(name)
			if !ok {
				log.Warn().Str(zerowrap.FieldEntityID, name).Msg("target network not registered")
				result[key] = domain.NewPreconditionError(domain.ResourceNetwork, name, "connect", domain.ErrNotRegistered)
				continue
			}
			if !n.Created() {
				log.Debug().Str(zerowrap.FieldEntityID, name).Msg("network has no ID, not connecting")
				continue
			}
			result[key] = n.Connect(ctx, containerID)
		}
	}
	return result
}

func (o *Orchestrator) targets(c *containers.Container) []string {
	if nets := c.Spec().Networks; len(nets) > 0 {
		return nets
	}
	if len(o.cfg.ConnectNetworks) > 0 {
		return o.cfg.ConnectNetworks
	}
	return o.networks.Names()
}
