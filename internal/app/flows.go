package app

import (
	"context"
	"errors"

	"github.com/bnema/zerowrap"

	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/pkg/validation"
)

// UpResult reports every phase of Up.
type UpResult struct {
	Images         domain.BulkResult
	Volumes        domain.BulkResult
	Containers     domain.BulkResult
	Infrastructure domain.Report
	StateErr       error
}

// Err joins the failures of every phase.
func (r UpResult) Err() error {
	return errors.Join(r.Images.Err(), r.Volumes.Err(), r.Containers.Err(), r.Infrastructure.Err(), r.StateErr)
}

// Up realizes the deployment: images are built or pulled, volumes and
// containers created, then the start infrastructure workflow runs. No phase
// aborts the ones after it.
func (a *App) Up(ctx context.Context) UpResult {
	ctx, log := a.flowCtx(ctx, "Up")

	var result UpResult
	result.Images = a.realizeImages(ctx)
	if path := a.cfg.State.ImagesFile; path != "" {
		result.StateErr = a.Images.SaveState(ctx, path)
	}
	result.Volumes = a.Volumes.CreateAll(ctx)
	result.Containers = a.Containers.CreateAll(ctx)
	result.Infrastructure = a.Orchestrator.StartInfrastructure(ctx)

	if err := result.Err(); err != nil {
		log.Warn().Err(err).Msg("deployment is up with failures")
	} else {
		log.Info().Dur(zerowrap.FieldDuration, result.Infrastructure.Duration()).Msg("deployment is up")
	}
	return result
}

// realizeImages builds images that have a build path and pulls the others.
func (a *App) realizeImages(ctx context.Context) domain.BulkResult {
	result := make(domain.BulkResult)
	for _, name := range a.Images.Names() {
		img, ok := a.Images.Get(name)
		if !ok {
			continue
		}
		if img.BuildPath() != "" {
			result[name] = img.Build(ctx)
		} else {
			result[name] = img.Pull(ctx)
		}
	}
	return result
}

// PublishResult reports every phase of Publish.
type PublishResult struct {
	Images domain.BulkResult
	Tags   domain.BulkResult
	Push   domain.BulkResult
}

// Err joins the failures of every phase.
func (r PublishResult) Err() error {
	return errors.Join(r.Images.Err(), r.Tags.Err(), r.Push.Err())
}

// Publish builds or pulls every image, tags the available ones with their
// registry-qualified reference and pushes them. An empty registry falls back
// to the configured default registry.
func (a *App) Publish(ctx context.Context, registry string) PublishResult {
	if registry == "" {
		registry = a.Images.DefaultRegistry()
	}
	ctx, log := a.flowCtx(ctx, "Publish")

	result := PublishResult{Images: a.realizeImages(ctx), Tags: make(domain.BulkResult)}
	for _, name := range result.Images.Succeeded() {
		img, ok := a.Images.Get(name)
		if !ok {
			continue
		}
		result.Tags[name] = img.Tag(ctx, validation.QualifyReference(registry, img.Ref()))
	}
	result.Push = a.Images.PushAll(ctx, registry)

	if err := result.Err(); err != nil {
		log.Warn().Err(err).Str("registry", registry).Msg("images published with failures")
	} else {
		log.Info().Str("registry", registry).Int(zerowrap.FieldCount, len(result.Push)).Msg("images published")
	}
	return result
}

// DownResult reports every phase of Down.
type DownResult struct {
	Adopt          domain.BulkResult
	Infrastructure domain.Report
	Volumes        domain.BulkResult
}

// Err joins the failures of every phase.
func (r DownResult) Err() error {
	return errors.Join(r.Adopt.Err(), r.Infrastructure.Err(), r.Volumes.Err())
}

// Down adopts the resources left by Up and runs the stop infrastructure
// workflow. With removeVolumes, volumes that no container mounts are removed too.
func (a *App) Down(ctx context.Context, removeVolumes bool) DownResult {
	ctx, log := a.flowCtx(ctx, "Down")

	var result DownResult
	result.Adopt = a.Adopt(ctx)
	result.Infrastructure = a.Orchestrator.StopInfrastructure(ctx)
	if removeVolumes {
		result.Volumes = a.Volumes.RemoveAll(ctx)
	}

	if err := result.Err(); err != nil {
		log.Warn().Err(err).Msg("deployment is down with failures")
	} else {
		log.Info().Bool("volumes_removed", removeVolumes).Msg("deployment is down")
	}
	return result
}

func (a *App) flowCtx(ctx context.Context, action string) (context.Context, zerowrap.Logger) {
	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, a.log), map[string]any{
		zerowrap.FieldLayer:  "app",
		zerowrap.FieldAction: action,
	})
	return ctx, zerowrap.FromCtx(ctx)
}
