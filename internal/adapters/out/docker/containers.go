package docker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"

	"github.com/bnema/infradeploy/internal/domain"
)

// CreateContainer creates a container from spec and returns its ID.
func (r *Runtime) CreateContainer(ctx context.Context, spec *domain.ContainerSpec) (string, error) {
	ctx, log := adapterCtx(ctx, "CreateContainer", map[string]any{
		"container_name": spec.Name,
		"image":          spec.Image,
	})

	exposedPorts, portBindings, err := portMappings(spec.Ports)
	if err != nil {
		return "", log.WrapErr(err, "invalid port mapping")
	}

	binds := make([]string, 0, len(spec.Volumes))
	for source, target := range spec.Volumes {
		binds = append(binds, source+":"+target)
		log.Debug().Str("volume", source).Str("mount_path", target).Msg("adding volume mount")
	}
	sort.Strings(binds)

	containerConfig := &container.Config{
		Image:        spec.Image,
		Cmd:          spec.Cmd,
		Env:          envList(spec.Env),
		ExposedPorts: exposedPorts,
		WorkingDir:   spec.WorkingDir,
		Labels:       spec.Labels,
	}
	if spec.StopTimeout > 0 {
		timeout := int(spec.StopTimeout.Seconds())
		containerConfig.StopTimeout = &timeout
	}

	hostConfig := &container.HostConfig{
		PortBindings: portBindings,
		Binds:        binds,
	}
	hostConfig.Memory = spec.MemoryLimit
	if spec.RestartPolicy != "" {
		hostConfig.RestartPolicy = container.RestartPolicy{Name: container.RestartPolicyMode(spec.RestartPolicy)}
	}

	resp, err := r.client.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, spec.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to create container")
		return "", classify(err, domain.ErrImageNotFound, nil)
	}

	for _, warning := range resp.Warnings {
		log.Warn().Str("warning", warning).Msg("engine warning on create")
	}
	log.Info().Str(zerowrap.FieldEntityID, resp.ID).Msg("container created")
	return resp.ID, nil
}

// StartContainer starts a container.
func (r *Runtime) StartContainer(ctx context.Context, containerID string) error {
	ctx, log := adapterCtx(ctx, "StartContainer", map[string]any{zerowrap.FieldEntityID: containerID})

	if err := r.client.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		log.Error().Err(err).Msg("failed to start container")
		return classify(err, domain.ErrContainerNotFound, nil)
	}

	log.Info().Msg("container started")
	return nil
}

// StopContainer stops a container, waiting up to timeout before killing it.
// A zero timeout uses the engine default.
func (r *Runtime) StopContainer(ctx context.Context, containerID string, timeout time.Duration) error {
	ctx, log := adapterCtx(ctx, "StopContainer", map[string]any{zerowrap.FieldEntityID: containerID})

	if err := r.client.ContainerStop(ctx, containerID, stopOptions(timeout)); err != nil {
		log.Error().Err(err).Msg("failed to stop container")
		return classify(err, domain.ErrContainerNotFound, nil)
	}

	log.Info().Msg("container stopped")
	return nil
}

// RestartContainer restarts a container.
func (r *Runtime) RestartContainer(ctx context.Context, containerID string, timeout time.Duration) error {
	ctx, log := adapterCtx(ctx, "RestartContainer", map[string]any{zerowrap.FieldEntityID: containerID})

	if err := r.client.ContainerRestart(ctx, containerID, stopOptions(timeout)); err != nil {
		log.Error().Err(err).Msg("failed to restart container")
		return classify(err, domain.ErrContainerNotFound, nil)
	}

	log.Info().Msg("container restarted")
	return nil
}

// RemoveContainer removes a container.
func (r *Runtime) RemoveContainer(ctx context.Context, containerID string, force bool) error {
	ctx, log := adapterCtx(ctx, "RemoveContainer", map[string]any{
		zerowrap.FieldEntityID: containerID,
		"force":                force,
	})

	if err := r.client.ContainerRemove(ctx, containerID, container.RemoveOptions{Force: force}); err != nil {
		log.Error().Err(err).Msg("failed to remove container")
		return classify(err, domain.ErrContainerNotFound, nil)
	}

	log.Info().Msg("container removed")
	return nil
}

// PauseContainer freezes every process of a container.
func (r *Runtime) PauseContainer(ctx context.Context, containerID string) error {
	ctx, log := adapterCtx(ctx, "PauseContainer", map[string]any{zerowrap.FieldEntityID: containerID})

	if err := r.client.ContainerPause(ctx, containerID); err != nil {
		log.Error().Err(err).Msg("failed to pause container")
		return classify(err, domain.ErrContainerNotFound, nil)
	}
	return nil
}

// UnpauseContainer resumes a paused container.
func (r *Runtime) UnpauseContainer(ctx context.Context, containerID string) error {
	ctx, log := adapterCtx(ctx, "UnpauseContainer", map[string]any{zerowrap.FieldEntityID: containerID})

	if err := r.client.ContainerUnpause(ctx, containerID); err != nil {
		log.Error().Err(err).Msg("failed to unpause container")
		return classify(err, domain.ErrContainerNotFound, nil)
	}
	return nil
}

// InspectContainer returns the runtime view of a container.
func (r *Runtime) InspectContainer(ctx context.Context, containerID string) (*domain.ContainerInfo, error) {
	ctx, log := adapterCtx(ctx, "InspectContainer", map[string]any{zerowrap.FieldEntityID: containerID})

	resp, err := r.client.ContainerInspect(ctx, containerID)
	if err != nil {
		log.Debug().Err(err).Msg("failed to inspect container")
		return nil, classify(err, domain.ErrContainerNotFound, nil)
	}

	info := &domain.ContainerInfo{
		ID:     resp.ID,
		Name:   strings.TrimPrefix(resp.Name, "/"),
		Image:  resp.Image,
		Status: domain.ContainerStatusUnknown,
	}
	if resp.Config != nil {
		info.Image = resp.Config.Image
		info.Labels = resp.Config.Labels
	}
	if resp.State != nil {
		info.Status = containerStatus(resp.State.Status)
		info.Running = resp.State.Running
		info.ExitCode = resp.State.ExitCode
		info.StartedAt = resp.State.StartedAt
	}
	if resp.NetworkSettings != nil {
		for name := range resp.NetworkSettings.Networks {
			info.Networks = append(info.Networks, name)
		}
		sort.Strings(info.Networks)
	}
	for _, m := range resp.Mounts {
		source := m.Name
		if source == "" {
			source = m.Source
		}
		info.Mounts = append(info.Mounts, source+":"+m.Destination)
	}

	return info, nil
}

// ContainerLogs returns the last tail lines of stdout and stderr, or all of
// them when tail is 0.
func (r *Runtime) ContainerLogs(ctx context.Context, containerID string, tail int) ([]byte, error) {
	ctx, log := adapterCtx(ctx, "ContainerLogs", map[string]any{zerowrap.FieldEntityID: containerID})

	opts := container.LogsOptions{ShowStdout: true, ShowStderr: true, Tail: "all"}
	if tail > 0 {
		opts.Tail = strconv.Itoa(tail)
	}

	reader, err := r.client.ContainerLogs(ctx, containerID, opts)
	if err != nil {
		log.Error().Err(err).Msg("failed to get container logs")
		return nil, classify(err, domain.ErrContainerNotFound, nil)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, log.WrapErr(err, "failed to read container logs")
	}
	return demuxLogs(raw), nil
}

// ContainerStats returns a single resource usage snapshot.
func (r *Runtime) ContainerStats(ctx context.Context, containerID string) (*domain.ContainerStats, error) {
	ctx, log := adapterCtx(ctx, "ContainerStats", map[string]any{zerowrap.FieldEntityID: containerID})

	resp, err := r.client.ContainerStatsOneShot(ctx, containerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get container stats")
		return nil, classify(err, domain.ErrContainerNotFound, nil)
	}
	defer resp.Body.Close()

	var stats container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, log.WrapErr(err, "failed to decode container stats")
	}
	return statsSnapshot(&stats), nil
}

// ExecInContainer runs cmd inside a container and collects its output.
func (r *Runtime) ExecInContainer(ctx context.Context, containerID string, cmd []string) (*domain.ExecResult, error) {
	if len(cmd) == 0 {
		return nil, domain.ErrEmptyCommand
	}

	ctx, log := adapterCtx(ctx, "ExecInContainer", map[string]any{
		zerowrap.FieldEntityID: containerID,
		"cmd":                  strings.Join(cmd, " "),
	})

	created, err := r.client.ContainerExecCreate(ctx, containerID, container.ExecOptions{
		Cmd:          cmd,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create exec")
		return nil, classify(err, domain.ErrContainerNotFound, nil)
	}

	attach, err := r.client.ContainerExecAttach(ctx, created.ID, container.ExecAttachOptions{})
	if err != nil {
		return nil, log.WrapErr(err, "failed to attach to exec")
	}
	defer attach.Close()

	stdout, stderr, err := parseExecOutput(attach.Reader)
	if err != nil {
		return nil, log.WrapErr(err, "failed to read exec output")
	}

	inspect, err := r.client.ContainerExecInspect(ctx, created.ID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to inspect exec")
	}

	log.Debug().Int("exit_code", inspect.ExitCode).Msg("exec finished")
	return &domain.ExecResult{
		ExitCode: inspect.ExitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}, nil
}

// portMappings converts "port[/proto]" -> "hostPort" pairs into engine port
// sets. A bare port defaults to tcp and an empty host port lets the engine
// pick one.
func portMappings(ports map[string]string) (nat.PortSet, nat.PortMap, error) {
	exposed := make(nat.PortSet, len(ports))
	bindings := make(nat.PortMap, len(ports))
	for containerPort, hostPort := range ports {
		proto, port := nat.SplitProtoPort(containerPort)
		if _, err := nat.ParsePort(port); err != nil {
			return nil, nil, fmt.Errorf("container port %q: %w", containerPort, err)
		}
		p, err := nat.NewPort(proto, port)
		if err != nil {
			return nil, nil, fmt.Errorf("container port %q: %w", containerPort, err)
		}
		exposed[p] = struct{}{}
		bindings[p] = []nat.PortBinding{{HostPort: hostPort}}
	}
	return exposed, bindings, nil
}

func envList(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	list := make([]string, 0, len(env))
	for k, v := range env {
		list = append(list, k+"="+v)
	}
	sort.Strings(list)
	return list
}

func stopOptions(timeout time.Duration) container.StopOptions {
	if timeout <= 0 {
		return container.StopOptions{}
	}
	seconds := int(timeout.Seconds())
	return container.StopOptions{Timeout: &seconds}
}

func containerStatus(status string) domain.ContainerStatus {
	switch domain.ContainerStatus(status) {
	case domain.ContainerStatusRunning, domain.ContainerStatusCreated,
		domain.ContainerStatusExited, domain.ContainerStatusPaused:
		return domain.ContainerStatus(status)
	default:
		return domain.ContainerStatusUnknown
	}
}

// statsSnapshot derives percentages and totals from one engine stats sample.
func statsSnapshot(s *container.StatsResponse) *domain.ContainerStats {
	out := &domain.ContainerStats{
		CPUPercent:  cpuPercent(s),
		MemoryUsage: s.MemoryStats.Usage,
		MemoryLimit: s.MemoryStats.Limit,
		PIDs:        s.PidsStats.Current,
		ReadAt:      s.Read,
	}
	if s.MemoryStats.Limit > 0 {
		out.MemoryPercent = float64(s.MemoryStats.Usage) / float64(s.MemoryStats.Limit) * 100
	}
	for _, n := range s.Networks {
		out.NetworkRx += n.RxBytes
		out.NetworkTx += n.TxBytes
	}
	for _, entry := range s.BlkioStats.IoServiceBytesRecursive {
		switch strings.ToLower(entry.Op) {
		case "read":
			out.BlockRead += entry.Value
		case "write":
			out.BlockWrite += entry.Value
		}
	}
	return out
}

func cpuPercent(s *container.StatsResponse) float64 {
	cpuDelta := float64(s.CPUStats.CPUUsage.TotalUsage) - float64(s.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(s.CPUStats.SystemUsage) - float64(s.PreCPUStats.SystemUsage)
	if systemDelta <= 0 || cpuDelta <= 0 {
		return 0
	}
	cpus := float64(s.CPUStats.OnlineCPUs)
	if cpus == 0 {
		cpus = float64(len(s.CPUStats.CPUUsage.PercpuUsage))
	}
	return cpuDelta / systemDelta * cpus * 100
}

// demuxLogs strips the multiplexing headers of a non-TTY log stream. TTY
// streams carry no headers and are returned unchanged.
func demuxLogs(raw []byte) []byte {
	var combined bytes.Buffer
	if _, err := stdcopy.StdCopy(&combined, &combined, bytes.NewReader(raw)); err != nil {
		return raw
	}
	return combined.Bytes()
}

// parseExecOutput splits a multiplexed exec stream into stdout and stderr.
func parseExecOutput(r io.Reader) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, r); err != nil {
		return nil, nil, err
	}
	return stdout.Bytes(), stderr.Bytes(), nil
}
