package docker

import (
	"context"
	"path/filepath"

	"github.com/bnema/zerowrap"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/pkg/archive"

	"github.com/bnema/infradeploy/internal/boundaries/out"
	"github.com/bnema/infradeploy/internal/domain"
)

const defaultDockerfile = "Dockerfile"

// PullImage pulls ref from its registry.
func (r *Runtime) PullImage(ctx context.Context, ref string, progress out.ProgressFunc) error {
	ctx, log := adapterCtx(ctx, "PullImage", map[string]any{"image": ref})

	reader, err := r.client.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		log.Error().Err(err).Msg("failed to pull image")
		return classify(err, domain.ErrImageNotFound, nil)
	}
	defer reader.Close()

	if err := decodeJSONMessages(reader, progress); err != nil {
		log.Error().Err(err).Msg("image pull stream reported an error")
		return err
	}

	log.Info().Msg("image pulled")
	return nil
}

// BuildImage builds the context directory of spec and tags the result.
func (r *Runtime) BuildImage(ctx context.Context, spec *domain.ImageSpec, progress out.ProgressFunc) (string, error) {
	ctx, log := adapterCtx(ctx, "BuildImage", map[string]any{
		"image":             spec.Name,
		zerowrap.FieldPath: spec.BuildPath,
	})

	if spec.BuildPath == "" {
		return "", domain.ErrNoBuildPath
	}

	dockerfile := spec.Dockerfile
	if dockerfile == "" {
		dockerfile = defaultDockerfile
	}

	buildContext, err := archive.TarWithOptions(filepath.Clean(spec.BuildPath), &archive.TarOptions{})
	if err != nil {
		return "", log.WrapErr(err, "failed to archive build context")
	}
	defer buildContext.Close()

	var buildArgs map[string]*string
	if len(spec.BuildArgs) > 0 {
		buildArgs = make(map[string]*string, len(spec.BuildArgs))
		for k, v := range spec.BuildArgs {
			buildArgs[k] = &v
		}
	}

	resp, err := r.client.ImageBuild(ctx, buildContext, types.ImageBuildOptions{
		Tags:        []string{spec.Tag()},
		Dockerfile:  dockerfile,
		BuildArgs:   buildArgs,
		Remove:      true,
		ForceRemove: true,
		Labels:      domain.ManagedLabels(domain.ResourceImage, spec.Name, nil),
	})
	if err != nil {
		return "", log.WrapErr(err, "failed to start image build")
	}
	defer resp.Body.Close()

	if err := decodeJSONMessages(resp.Body, progress); err != nil {
		log.Error().Err(err).Msg("image build stream reported an error")
		return "", err
	}

	inspect, err := r.client.ImageInspect(ctx, spec.Tag())
	if err != nil {
		return "", log.WrapErr(err, "failed to inspect built image")
	}

	log.Info().Str(zerowrap.FieldEntityID, inspect.ID).Str("tag", spec.Tag()).Msg("image built")
	return inspect.ID, nil
}

// InspectImage returns metadata of a local image.
func (r *Runtime) InspectImage(ctx context.Context, ref string) (*domain.ImageInfo, error) {
	ctx, log := adapterCtx(ctx, "InspectImage", map[string]any{"image": ref})

	resp, err := r.client.ImageInspect(ctx, ref)
	if err != nil {
		log.Debug().Err(err).Msg("failed to inspect image")
		return nil, classify(err, domain.ErrImageNotFound, nil)
	}

	info := &domain.ImageInfo{
		ID:           resp.ID,
		RepoTags:     resp.RepoTags,
		RepoDigests:  resp.RepoDigests,
		Created:      resp.Created,
		Size:         resp.Size,
		Architecture: resp.Architecture,
		OS:           resp.Os,
	}
	if resp.Config != nil {
		info.Labels = resp.Config.Labels
	}
	return info, nil
}

// TagImage adds targetRef as a new name for sourceRef.
func (r *Runtime) TagImage(ctx context.Context, sourceRef, targetRef string) error {
	ctx, log := adapterCtx(ctx, "TagImage", map[string]any{
		"image":  sourceRef,
		"target": targetRef,
	})

	if err := r.client.ImageTag(ctx, sourceRef, targetRef); err != nil {
		log.Error().Err(err).Msg("failed to tag image")
		return classify(err, domain.ErrImageNotFound, nil)
	}

	log.Info().Msg("image tagged")
	return nil
}

// PushImage pushes ref to the registry its name points to.
func (r *Runtime) PushImage(ctx context.Context, ref string, progress out.ProgressFunc) error {
	ctx, log := adapterCtx(ctx, "PushImage", map[string]any{"image": ref})

	reader, err := r.client.ImagePush(ctx, ref, image.PushOptions{})
	if err != nil {
		log.Error().Err(err).Msg("failed to push image")
		return classify(err, domain.ErrImageNotFound, nil)
	}
	defer reader.Close()

	if err := decodeJSONMessages(reader, progress); err != nil {
		log.Error().Err(err).Msg("image push stream reported an error")
		return err
	}

	log.Info().Msg("image pushed")
	return nil
}

// RemoveImage deletes a local image and prunes its untagged parents.
func (r *Runtime) RemoveImage(ctx context.Context, ref string, force bool) error {
	ctx, log := adapterCtx(ctx, "RemoveImage", map[string]any{
		"image": ref,
		"force": force,
	})

	deleted, err := r.client.ImageRemove(ctx, ref, image.RemoveOptions{Force: force, PruneChildren: true})
	if err != nil {
		log.Error().Err(err).Msg("failed to remove image")
		return classify(err, domain.ErrImageNotFound, nil)
	}

	log.Info().Int(zerowrap.FieldCount, len(deleted)).Msg("image removed")
	return nil
}
