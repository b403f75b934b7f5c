package docker

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/infradeploy/internal/domain"
)

func TestRuntime_PullImage_ForwardsProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.41/images/create", r.URL.Path)
		assert.Equal(t, "nginx", r.URL.Query().Get("fromImage"))
		assert.Equal(t, "latest", r.URL.Query().Get("tag"))
		_, _ = w.Write([]byte(`{"status":"Pulling from library/nginx","id":"latest"}
{"status":"Download complete","id":"a1b2"}
`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	var lines []string
	err := runtime.PullImage(testContext(), "nginx:latest", func(line string) {
		lines = append(lines, line)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"latest: Pulling from library/nginx", "a1b2: Download complete"}, lines)
}

func TestRuntime_PushImage_StreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1.41/images/registry.example.com/app/push", r.URL.Path)
		assert.Equal(t, "v1", r.URL.Query().Get("tag"))
		_, _ = w.Write([]byte(`{"status":"The push refers to repository [registry.example.com/app]"}
{"errorDetail":{"message":"denied: requested access to the resource is denied"},"error":"denied: requested access to the resource is denied"}
`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	err := runtime.PushImage(testContext(), "registry.example.com/app:v1", nil)

	require.ErrorIs(t, err, domain.ErrImageStream)
	assert.Contains(t, err.Error(), "denied")
}

func TestRuntime_InspectImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1.41/images/nginx:latest/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Id":"sha256:abc",
			"RepoTags":["nginx:latest","nginx:1.27"],
			"Created":"2026-01-01T00:00:00Z",
			"Size":1024,
			"Architecture":"amd64",
			"Os":"linux",
			"Config":{"Labels":{"maintainer":"nginx"}}
		}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	info, err := runtime.InspectImage(testContext(), "nginx:latest")

	require.NoError(t, err)
	assert.Equal(t, "sha256:abc", info.ID)
	assert.Equal(t, []string{"nginx:latest", "nginx:1.27"}, info.RepoTags)
	assert.Equal(t, int64(1024), info.Size)
	assert.Equal(t, "linux", info.OS)
	assert.Equal(t, "nginx", info.Labels["maintainer"])
}

func TestRuntime_InspectImage_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"No such image: ghost:latest"}`))
	}))
	defer server.Close()

	runtime := newRuntimeForHTTPServer(t, server)
	_, err := runtime.InspectImage(testContext(), "ghost:latest")

	assert.ErrorIs(t, err, domain.ErrImageNotFound)
}

func TestRuntime_BuildImage_RequiresBuildPath(t *testing.T) {
	runtime := &Runtime{}

	_, err := runtime.BuildImage(testContext(), &domain.ImageSpec{Name: "app"}, nil)

	assert.ErrorIs(t, err, domain.ErrNoBuildPath)
}

func TestDecodeJSONMessages_BuildStream(t *testing.T) {
	stream := strings.NewReader(`{"stream":"Step 1/2 : FROM alpine\n"}
{"stream":"Successfully built 0123\n"}
`)

	var lines []string
	err := decodeJSONMessages(stream, func(line string) { lines = append(lines, line) })

	require.NoError(t, err)
	assert.Equal(t, []string{"Step 1/2 : FROM alpine", "Successfully built 0123"}, lines)
}

func TestDecodeJSONMessages_Malformed(t *testing.T) {
	err := decodeJSONMessages(strings.NewReader(`{"status":`), nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrImageStream)
}
