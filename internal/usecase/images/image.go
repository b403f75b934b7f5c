// Package images implements the image resource and its manager.
package images

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/zerowrap"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/pkg/validation"
)

// Image is one image tracked by the manager, together with what has been
// done to it so far.
type Image struct {
	spec     domain.ImageSpec
	runtime  out.ImageRuntime
	recorder out.OperationRecorder
	log      zerowrap.Logger

	mu    sync.RWMutex
	state domain.ImageState
	tags  []string
	info  *domain.ImageInfo
}

// NewImage creates an image with every state flag false. recorder may be nil.
func NewImage(spec domain.ImageSpec, rt out.ImageRuntime, recorder out.OperationRecorder, log zerowrap.Logger) *Image {
	return &Image{
		spec:     spec,
		runtime:  rt,
		recorder: recorder,
		log:      log,
	}
}

func (i *Image) Name() string {
	return i.spec.Name
}

func (i *Image) Spec() domain.ImageSpec {
	return i.spec
}

func (i *Image) BuildPath() string {
	return i.spec.BuildPath
}

// State returns a copy of the current state flags.
func (i *Image) State() domain.ImageState {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.state
}

// Tags returns the tags applied through Tag and Push.
func (i *Image) Tags() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return slices.Clone(i.tags)
}

// Info returns the metadata captured by the last successful pull, build or inspect.
func (i *Image) Info() *domain.ImageInfo {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.info == nil {
		return nil
	}
	info := *i.info
	return &info
}

func (i *Image) Status() domain.ImageStatus {
	return domain.ImageStatus{
		Name:      i.spec.Name,
		BuildPath: i.spec.BuildPath,
		State:     i.State(),
		Tags:      i.Tags(),
	}
}

// Ref is the local reference of the image: the build tag once built, the name otherwise.
func (i *Image) Ref() string {
	if i.State().Built {
		return i.spec.Tag()
	}
	return i.spec.Name
}

// Pull fetches the image from its registry and marks it pulled.
func (i *Image) Pull(ctx context.Context) error {
	ctx, log := i.begin(ctx, "Pull")

	log.Info().Msg("pulling image")
	if err := i.runtime.PullImage(ctx, i.spec.Name, progressLogger(log)); err != nil {
		log.Error().Err(err).Msg("failed to pull image")
		return i.fail(ctx, domain.NewRemoteError(domain.ResourceImage, i.spec.Name, "pull", err))
	}

	i.mu.Lock()
	i.state.Pulled = true
	i.mu.Unlock()

	i.refresh(ctx, i.spec.Name)
	log.Info().Msg("image pulled")
	return i.done(ctx, "pull")
}

// Build builds the image from its build path and tags it with the build tag.
func (i *Image) Build(ctx context.Context) error {
	ctx, log := i.begin(ctx, "Build")

	if i.spec.BuildPath == "" {
		log.Warn().Msg("no build path specified for image")
		return i.fail(ctx, domain.NewPreconditionError(domain.ResourceImage, i.spec.Name, "build", domain.ErrNoBuildPath))
	}

	tag := i.spec.Tag()
	log.Info().Str(zerowrap.FieldPath, i.spec.BuildPath).Str("tag", tag).Msg("building image")

	spec := i.spec
	id, err := i.runtime.BuildImage(ctx, &spec, progressLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("failed to build image")
		return i.fail(ctx, domain.NewRemoteError(domain.ResourceImage, i.spec.Name, "build", err))
	}

	i.mu.Lock()
	i.state.Built = true
	i.mu.Unlock()

	i.refresh(ctx, tag)
	log.Info().Str("image_id", id).Msg("image built")
	return i.done(ctx, "build")
}

// Tag applies newTag to the local image. The image must have been pulled or built.
func (i *Image) Tag(ctx context.Context, newTag string) error {
	ctx, log := i.begin(ctx, "Tag")

	if !i.State().Available() {
		log.Warn().Msg("image has not been pulled or built yet")
		return i.fail(ctx, domain.NewPreconditionError(domain.ResourceImage, i.spec.Name, "tag", domain.ErrImageNotAvailable))
	}
	if err := validation.ValidateImageReference(newTag); err != nil {
		log.Warn().Err(err).Str("tag", newTag).Msg("invalid tag")
		return i.fail(ctx, domain.NewPreconditionError(domain.ResourceImage, i.spec.Name, "tag",
			fmt.Errorf("%w: %w", domain.ErrInvalidImageName, err)))
	}

	if err := i.tag(ctx, newTag); err != nil {
		return i.fail(ctx, err)
	}
	log.Info().Str("tag", newTag).Msg("image tagged")
	return i.done(ctx, "tag")
}

func (i *Image) tag(ctx context.Context, target string) *domain.OpError {
	log := zerowrap.FromCtx(ctx)
	if err := i.runtime.TagImage(ctx, i.Ref(), target); err != nil {
		log.Error().Err(err).Str("tag", target).Msg("failed to tag image")
		return domain.NewRemoteError(domain.ResourceImage, i.spec.Name, "tag", err)
	}

	i.mu.Lock()
	i.state.Tagged = true
	if !slices.Contains(i.tags, target) {
		i.tags = append(i.tags, target)
	}
	i.mu.Unlock()
	return nil
}

// Push sends the image to registry. The image must have been tagged. When
// registry is set, the image is first tagged with the registry-qualified
// reference and that reference is pushed.
func (i *Image) Push(ctx context.Context, registry string) error {
	ctx, log := i.begin(ctx, "Push")

	if !i.State().Tagged {
		log.Warn().Msg("image has not been tagged yet")
		return i.fail(ctx, domain.NewPreconditionError(domain.ResourceImage, i.spec.Name, "push", domain.ErrImageNotTagged))
	}

	target := validation.QualifyReference(registry, i.Ref())
	if target != i.Ref() {
		if err := i.tag(ctx, target); err != nil {
			return i.fail(ctx, err)
		}
	}

	log.Info().Str("registry", registry).Str("ref", target).Msg("pushing image")
	if err := i.runtime.PushImage(ctx, target, progressLogger(log)); err != nil {
		log.Error().Err(err).Str("ref", target).Msg("failed to push image")
		return i.fail(ctx, domain.NewRemoteError(domain.ResourceImage, i.spec.Name, "push", err))
	}

	log.Info().Str("ref", target).Msg("image pushed")
	return i.done(ctx, "push")
}

// Remove deletes the local image and resets every state flag.
func (i *Image) Remove(ctx context.Context, force bool) error {
	ctx, log := i.begin(ctx, "Remove")

	log.Info().Bool("force", force).Msg("removing image")
	if err := i.runtime.RemoveImage(ctx, i.Ref(), force); err != nil {
		log.Error().Err(err).Msg("failed to remove image")
		return i.fail(ctx, domain.NewRemoteError(domain.ResourceImage, i.spec.Name, "remove", err))
	}

	i.mu.Lock()
	i.state = domain.ImageState{}
	i.tags = nil
	i.info = nil
	i.mu.Unlock()

	log.Info().Msg("image removed")
	return i.done(ctx, "remove")
}

// Inspect returns the runtime metadata of the image and caches it.
func (i *Image) Inspect(ctx context.Context) (*domain.ImageInfo, error) {
	ctx, log := i.begin(ctx, "Inspect")

	info, err := i.runtime.InspectImage(ctx, i.Ref())
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			log.Warn().Msg("image not found")
		} else {
			log.Error().Err(err).Msg("failed to inspect image")
		}
		return nil, i.fail(ctx, domain.NewRemoteError(domain.ResourceImage, i.spec.Name, "inspect", err))
	}

	i.mu.Lock()
	i.info = info
	i.mu.Unlock()
	return info, i.done(ctx, "inspect")
}

// ListTags returns every repository tag the runtime knows for the image.
func (i *Image) ListTags(ctx context.Context) ([]string, error) {
	info, err := i.Inspect(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(info.RepoTags), nil
}

// refresh caches the image metadata after a pull or build. A failed inspect
// does not undo the operation that preceded it.
func (i *Image) refresh(ctx context.Context, ref string) {
	log := zerowrap.FromCtx(ctx)
	info, err := i.runtime.InspectImage(ctx, ref)
	if err != nil {
		log.Warn().Err(err).Str("ref", ref).Msg("could not inspect image after operation")
		return
	}
	i.mu.Lock()
	i.info = info
	i.mu.Unlock()
}

func (i *Image) begin(ctx context.Context, action string) (context.Context, zerowrap.Logger) {
	ctx = zerowrap.CtxWithFields(zerowrap.WithCtx(ctx, i.log), map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  action,
		zerowrap.FieldEntityID: i.spec.Name,
	})
	return ctx, zerowrap.FromCtx(ctx)
}

func (i *Image) fail(ctx context.Context, err *domain.OpError) error {
	if i.recorder != nil {
		i.recorder.RecordOperation(ctx, domain.ResourceImage, err.Op, err)
	}
	return err
}

func (i *Image) done(ctx context.Context, op string) error {
	if i.recorder != nil {
		i.recorder.RecordOperation(ctx, domain.ResourceImage, op, nil)
	}
	return nil
}

func progressLogger(log zerowrap.Logger) out.ProgressFunc {
	return func(line string) {
		log.Debug().Msg(line)
	}
}
