package docker

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/infradeploy/internal/domain"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func TestRuntime_CreateContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.41/containers/create", r.URL.Path)
		assert.Equal(t, "web", r.URL.Query().Get("name"))

		var body struct {
			container.Config
			HostConfig container.HostConfig
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "nginx:latest", body.Image)
		assert.Equal(t, []string{"A=1", "B=2"}, body.Env)
		assert.Contains(t, body.ExposedPorts, nat.Port("80/tcp"))
		assert.Equal(t, "8080", body.HostConfig.PortBindings[nat.Port("80/tcp")][0].HostPort)
		assert.Equal(t, []string{"data:/var/lib/data"}, body.HostConfig.Binds)
		assert.Equal(t, int64(64<<20), body.HostConfig.Memory)
		assert.Equal(t, container.RestartPolicyMode("unless-stopped"), body.HostConfig.RestartPolicy.Name)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"Id":"abc123","Warnings":[]}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	id, err := runtime.CreateContainer(testContext(), &domain.ContainerSpec{
		Name:          "web",
		Image:         "nginx:latest",
		Env:           map[string]string{"B": "2", "A": "1"},
		Ports:         map[string]string{"80": "8080"},
		Volumes:       map[string]string{"data": "/var/lib/data"},
		MemoryLimit:   64 << 20,
		RestartPolicy: "unless-stopped",
	})

	require.NoError(t, err)
	assert.Equal(t, "abc123", id)
}

func TestRuntime_CreateContainer_InvalidPort(t *testing.T) {
	runtime := &Runtime{}

	_, err := runtime.CreateContainer(testContext(), &domain.ContainerSpec{
		Name:  "web",
		Image: "nginx",
		Ports: map[string]string{"http": "80"},
	})

	assert.Error(t, err)
}

func TestRuntime_InspectContainer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1.41/containers/abc123/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Id":"abc123",
			"Name":"/web",
			"Image":"sha256:deadbeef",
			"State":{"Status":"running","Running":true,"ExitCode":0,"StartedAt":"2026-01-01T00:00:00Z"},
			"Config":{"Image":"nginx:latest","Labels":{"infradeploy.managed":"true"}},
			"NetworkSettings":{"Networks":{"frontend":{},"backend":{}}},
			"Mounts":[{"Type":"volume","Name":"data","Source":"/var/lib/docker/volumes/data/_data","Destination":"/data"}]
		}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	info, err := runtime.InspectContainer(testContext(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "web", info.Name)
	assert.Equal(t, "nginx:latest", info.Image)
	assert.Equal(t, domain.ContainerStatusRunning, info.Status)
	assert.True(t, info.Running)
	assert.Equal(t, []string{"backend", "frontend"}, info.Networks)
	assert.Equal(t, []string{"data:/data"}, info.Mounts)
	assert.Equal(t, "true", info.Labels[domain.LabelManaged])
}

func TestRuntime_InspectContainer_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"No such container: missing"}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	_, err := runtime.InspectContainer(testContext(), "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrContainerNotFound))
}

func TestRuntime_StopContainer_SendsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/containers/abc123/stop", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("t"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)

	assert.NoError(t, runtime.StopContainer(testContext(), "abc123", 5*time.Second))
}

func TestRuntime_ContainerStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/containers/abc123/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"pids_stats":{"current":4},
			"cpu_stats":{"cpu_usage":{"total_usage":300},"system_cpu_usage":2000,"online_cpus":2},
			"precpu_stats":{"cpu_usage":{"total_usage":100},"system_cpu_usage":1000},
			"memory_stats":{"usage":50,"limit":200},
			"networks":{"eth0":{"rx_bytes":10,"tx_bytes":20},"eth1":{"rx_bytes":1,"tx_bytes":2}},
			"blkio_stats":{"io_service_bytes_recursive":[{"op":"Read","value":7},{"op":"write","value":9}]}
		}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	stats, err := runtime.ContainerStats(testContext(), "abc123")

	require.NoError(t, err)
	assert.InDelta(t, 40.0, stats.CPUPercent, 0.001)
	assert.InDelta(t, 25.0, stats.MemoryPercent, 0.001)
	assert.Equal(t, uint64(11), stats.NetworkRx)
	assert.Equal(t, uint64(22), stats.NetworkTx)
	assert.Equal(t, uint64(7), stats.BlockRead)
	assert.Equal(t, uint64(9), stats.BlockWrite)
	assert.Equal(t, uint64(4), stats.PIDs)
}

func TestCPUPercent_NoDelta(t *testing.T) {
	var s container.StatsResponse
	s.CPUStats.CPUUsage.TotalUsage = 100
	s.PreCPUStats.CPUUsage.TotalUsage = 100
	s.CPUStats.SystemUsage = 1000

	assert.Zero(t, cpuPercent(&s))
}

func TestDemuxLogs(t *testing.T) {
	t.Run("multiplexed", func(t *testing.T) {
		raw := append(frameDockerStream(1, []byte("out\n")), frameDockerStream(2, []byte("err\n"))...)
		assert.Equal(t, "out\nerr\n", string(demuxLogs(raw)))
	})

	t.Run("tty passthrough", func(t *testing.T) {
		raw := []byte("plain log line\n")
		assert.Equal(t, raw, demuxLogs(raw))
	})
}

func TestParseExecOutput_SplitsStdoutAndStderr(t *testing.T) {
	stream := append(frameDockerStream(1, []byte("hello\n")), frameDockerStream(2, []byte("warn\n"))...)

	stdout, stderr, err := parseExecOutput(bytes.NewReader(stream))

	require.NoError(t, err)
	assert.Equal(t, []byte("hello\n"), stdout)
	assert.Equal(t, []byte("warn\n"), stderr)
}

func TestRuntime_ExecInContainer_RejectsEmptyCommand(t *testing.T) {
	r := &Runtime{}

	tests := []struct {
		name string
		cmd  []string
	}{
		{name: "nil", cmd: nil},
		{name: "empty slice", cmd: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := r.ExecInContainer(context.Background(), "abc123", tt.cmd)
			require.ErrorIs(t, err, domain.ErrEmptyCommand)
			assert.Nil(t, result)
		})
	}
}

func frameDockerStream(streamID byte, payload []byte) []byte {
	frame := make([]byte, 8+len(payload))
	frame[0] = streamID
	binary.BigEndian.PutUint32(frame[4:8], uint32(len(payload)))
	copy(frame[8:], payload)
	return frame
}
