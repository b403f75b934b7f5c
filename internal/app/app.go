package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/bnema/infradeploy/internal/adapters/out/docker"
	"github.com/bnema/infradeploy/internal/adapters/out/filesystem"
	"github.com/bnema/infradeploy/internal/adapters/out/telemetry"
	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/internal/usecase/containers"
	"github.com/bnema/infradeploy/internal/usecase/images"
	"github.com/bnema/infradeploy/internal/usecase/networks"
	"github.com/bnema/infradeploy/internal/usecase/orchestrator"
	"github.com/bnema/infradeploy/internal/usecase/volumes"
)

const serviceName = "infradeploy"

// App wires the managers and the orchestrator to their adapters.
type App struct {
	cfg     Config
	log     zerowrap.Logger
	runtime out.RuntimeClient

	Images       *images.Manager
	Volumes      *volumes.Manager
	Networks     *networks.Manager
	Containers   *containers.Manager
	Orchestrator *orchestrator.Orchestrator

	cleanup []func()
}

// Open loads configuration, connects to the engine and registers every
// resource of the deployment descriptor.
func Open(ctx context.Context, configPath, version string) (*App, context.Context, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, ctx, err
	}

	log, logCleanup, err := initLogger(cfg)
	if err != nil {
		return nil, ctx, err
	}
	ctx = zerowrap.WithCtx(ctx, log)

	var cleanup []func()
	if logCleanup != nil {
		cleanup = append(cleanup, logCleanup)
	}
	closeAll := func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}

	_, shutdown, err := telemetry.NewProvider(ctx, cfg.Telemetry, serviceName, version)
	if err != nil {
		closeAll()
		return nil, ctx, log.WrapErr(err, "failed to initialize telemetry")
	}
	cleanup = append(cleanup, func() { shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		closeAll()
		return nil, ctx, log.WrapErr(err, "failed to create metrics")
	}

	runtime, err := docker.NewRuntime(docker.Config{
		Host:       cfg.Docker.Host,
		APIVersion: cfg.Docker.APIVersion,
	})
	if err != nil {
		closeAll()
		return nil, ctx, log.WrapErr(err, "failed to create Docker runtime")
	}
	cleanup = append(cleanup, func() { _ = runtime.Close() })

	if err := runtime.Ping(ctx); err != nil {
		closeAll()
		return nil, ctx, log.WrapErr(err, "container engine is not reachable")
	}
	if err := runtime.RequireAPIVersion(ctx, docker.MinAPIVersion); err != nil {
		closeAll()
		return nil, ctx, log.WrapErr(err, "unsupported container engine")
	}

	a := New(cfg, runtime, filesystem.NewNameListStore(log), metrics, log)
	a.cleanup = cleanup

	if err := a.Register(ctx, cfg.Deployment); err != nil {
		a.Close()
		return nil, ctx, err
	}

	return a, ctx, nil
}

// New wires an App over the given adapters. recorder may be nil.
func New(cfg Config, rt out.RuntimeClient, store out.NameListStore, recorder out.OperationRecorder, log zerowrap.Logger) *App {
	networkManager := networks.NewManager(rt, recorder, log)
	containerManager := containers.NewManager(rt, recorder, log)

	return &App{
		cfg:     cfg,
		log:     log,
		runtime: rt,
		Images: images.NewManager(rt, store, recorder, images.Config{
			DefaultRegistry: cfg.Images.DefaultRegistry,
			PullConcurrency: cfg.Images.PullConcurrency,
		}, log),
		Volumes:    volumes.NewManager(rt, recorder, log),
		Networks:   networkManager,
		Containers: containerManager,
		Orchestrator: orchestrator.New(networkManager, containerManager, recorder, orchestrator.Config{
			ConnectNetworks: cfg.Orchestrator.ConnectNetworks,
		}, log),
	}
}

// Close releases the engine connection, flushes telemetry and closes the log file.
func (a *App) Close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}

// Config returns the loaded configuration.
func (a *App) Config() Config {
	return a.cfg
}

// Runtime returns the engine client.
func (a *App) Runtime() out.RuntimeClient {
	return a.runtime
}

// Register validates the descriptor and adds every resource to its manager.
func (a *App) Register(ctx context.Context, d Deployment) error {
	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, a.log), map[string]any{
		zerowrap.FieldLayer:  "app",
		zerowrap.FieldAction: "Register",
	})
	log := zerowrap.FromCtx(ctx)

	specs, err := d.Specs()
	if err != nil {
		log.Error().Err(err).Msg("invalid deployment descriptor")
		return err
	}

	var errs []error
	for _, spec := range specs.Networks {
		if _, err := a.Networks.Add(ctx, spec); err != nil {
			errs = append(errs, err)
		}
	}
	for _, spec := range specs.Volumes {
		if _, err := a.Volumes.Add(ctx, spec); err != nil {
			errs = append(errs, err)
		}
	}
	for _, spec := range specs.Images {
		if _, err := a.Images.Add(ctx, spec); err != nil {
			errs = append(errs, err)
		}
	}
	for _, plan := range specs.Containers {
		image, _ := a.Images.Get(plan.Image)
		if _, err := a.Containers.Add(ctx, plan.Name, image, plan.Spec); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("register deployment: %w", err)
	}

	log.Info().
		Int("networks", len(specs.Networks)).
		Int("volumes", len(specs.Volumes)).
		Int("images", len(specs.Images)).
		Int("containers", len(specs.Containers)).
		Msg("deployment registered")
	return nil
}

// Adopt binds every registered network, volume and container to the runtime
// resources left by an earlier run. Results are keyed "kind/name".
func (a *App) Adopt(ctx context.Context) domain.BulkResult {
	result := make(domain.BulkResult)
	merge(result, "network", a.Networks.AdoptAll(ctx))
	merge(result, "volume", a.Volumes.AdoptAll(ctx))
	merge(result, "container", a.Containers.AdoptAll(ctx))
	return result
}

func merge(dst domain.BulkResult, prefix string, src domain.BulkResult) {
	for name, err := range src {
		dst[prefix+"/"+name] = err
	}
}
