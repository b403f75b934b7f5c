// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

import "time"

// ContainerSpec holds configuration for creating a container.
type ContainerSpec struct {
	Name          string
	Image         string
	Cmd           []string
	Env           map[string]string
	Volumes       map[string]string // map[volumeName or hostPath]containerPath
	Ports         map[string]string // map[containerPort]hostPort, e.g. "8080/tcp" -> "80"
	Labels        map[string]string
	WorkingDir    string
	MemoryLimit   int64 // bytes, 0 means unlimited
	StopTimeout   time.Duration
	RestartPolicy string
	Networks      []string // networks to join when the infrastructure starts
}

// Merge returns a copy of s with the non-zero fields of override applied.
// Maps are merged key by key.
func (s ContainerSpec) Merge(override ContainerSpec) ContainerSpec {
	out := s
	if len(override.Cmd) > 0 {
		out.Cmd = override.Cmd
	}
	out.Env = mergeMap(s.Env, override.Env)
	out.Volumes = mergeMap(s.Volumes, override.Volumes)
	out.Ports = mergeMap(s.Ports, override.Ports)
	out.Labels = mergeMap(s.Labels, override.Labels)
	if override.WorkingDir != "" {
		out.WorkingDir = override.WorkingDir
	}
	if override.MemoryLimit != 0 {
		out.MemoryLimit = override.MemoryLimit
	}
	if override.StopTimeout != 0 {
		out.StopTimeout = override.StopTimeout
	}
	if override.RestartPolicy != "" {
		out.RestartPolicy = override.RestartPolicy
	}
	if len(override.Networks) > 0 {
		out.Networks = override.Networks
	}
	return out
}

func mergeMap(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// ContainerStatus represents the current state of a container.
type ContainerStatus string

const (
	ContainerStatusRunning ContainerStatus = "running"
	ContainerStatusCreated ContainerStatus = "created"
	ContainerStatusExited  ContainerStatus = "exited"
	ContainerStatusPaused  ContainerStatus = "paused"
	ContainerStatusUnknown ContainerStatus = "unknown"
)

// ContainerInfo is the runtime view of a container.
type ContainerInfo struct {
	ID        string
	Name      string
	Image     string
	Status    ContainerStatus
	Running   bool
	ExitCode  int
	StartedAt string
	Networks  []string
	Mounts    []string
	Labels    map[string]string
}

// ExecResult holds the output of a command run inside a container.
type ExecResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Output returns stdout followed by stderr.
func (r ExecResult) Output() string {
	return string(r.Stdout) + string(r.Stderr)
}

// ContainerStats is a point-in-time resource usage snapshot.
type ContainerStats struct {
	CPUPercent    float64
	MemoryUsage   uint64
	MemoryLimit   uint64
	MemoryPercent float64
	NetworkRx     uint64
	NetworkTx     uint64
	BlockRead     uint64
	BlockWrite    uint64
	PIDs          uint64
	ReadAt        time.Time
}
