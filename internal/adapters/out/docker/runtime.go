// Package docker implements the runtime client port using the Docker Engine API.
package docker

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/bnema/zerowrap"
	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/client"

	"github.com/bnema/infradeploy/internal/boundaries/out"
)

var _ out.RuntimeClient = (*Runtime)(nil)

// MinAPIVersion is the oldest Engine API the adapter is written against.
const MinAPIVersion = "1.41"

// Config selects the engine endpoint. Empty fields fall back to the
// DOCKER_HOST / DOCKER_API_VERSION environment.
type Config struct {
	Host       string
	APIVersion string
}

// Runtime implements out.RuntimeClient on top of the Docker SDK client.
type Runtime struct {
	client *client.Client
}

// NewRuntime creates a new Docker runtime instance.
func NewRuntime(cfg Config) (*Runtime, error) {
	opts := []client.Opt{client.FromEnv}
	if cfg.Host != "" {
		opts = append(opts, client.WithHost(cfg.Host))
	}
	if cfg.APIVersion != "" {
		opts = append(opts, client.WithVersion(cfg.APIVersion))
	} else {
		opts = append(opts, client.WithAPIVersionNegotiation())
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return &Runtime{
		client: cli,
	}, nil
}

// NewRuntimeWithClient creates a new Docker runtime instance with a custom client (for testing).
func NewRuntimeWithClient(cli *client.Client) *Runtime {
	return &Runtime{
		client: cli,
	}
}

// Close releases the underlying HTTP transport.
func (r *Runtime) Close() error {
	return r.client.Close()
}

// Ping checks if Docker is responsive.
func (r *Runtime) Ping(ctx context.Context) error {
	ctx, log := adapterCtx(ctx, "Ping", nil)

	if _, err := r.client.Ping(ctx); err != nil {
		return log.WrapErr(err, "Docker ping failed")
	}
	return nil
}

// Version returns the engine version.
func (r *Runtime) Version(ctx context.Context) (string, error) {
	ctx, log := adapterCtx(ctx, "Version", nil)

	version, err := r.client.ServerVersion(ctx)
	if err != nil {
		return "", log.WrapErr(err, "failed to get Docker version")
	}
	return version.Version, nil
}

// RequireAPIVersion fails when the engine speaks an API older than minimum.
func (r *Runtime) RequireAPIVersion(ctx context.Context, minimum string) error {
	ctx, log := adapterCtx(ctx, "RequireAPIVersion", map[string]any{"min_api": minimum})

	version, err := r.client.ServerVersion(ctx)
	if err != nil {
		return log.WrapErr(err, "failed to get Docker version")
	}
	ok, err := apiAtLeast(version.APIVersion, minimum)
	if err != nil {
		return log.WrapErr(err, "failed to compare engine API version")
	}
	if !ok {
		return fmt.Errorf("engine API %s is older than the required %s", version.APIVersion, minimum)
	}
	log.Debug().Str("api_version", version.APIVersion).Str("engine_version", version.Version).Msg("engine API version accepted")
	return nil
}

func apiAtLeast(have, minimum string) (bool, error) {
	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return false, err
	}
	v, err := semver.NewVersion(have)
	if err != nil {
		return false, fmt.Errorf("invalid API version %q: %w", have, err)
	}
	return constraint.Check(v), nil
}

func adapterCtx(ctx context.Context, action string, fields map[string]any) (context.Context, zerowrap.Logger) {
	all := map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "docker",
		zerowrap.FieldAction:  action,
	}
	for k, v := range fields {
		all[k] = v
	}
	ctx = zerowrap.CtxWithFields(ctx, all)
	return ctx, zerowrap.FromCtx(ctx)
}

// classify maps engine not-found and conflict errors onto the given domain
// sentinels so callers can match them with errors.Is. Other errors are
// returned as is.
func classify(err error, notFound, conflict error) error {
	switch {
	case notFound != nil && cerrdefs.IsNotFound(err):
		return fmt.Errorf("%w: %w", notFound, err)
	case conflict != nil && cerrdefs.IsConflict(err):
		return fmt.Errorf("%w: %w", conflict, err)
	default:
		return err
	}
}
