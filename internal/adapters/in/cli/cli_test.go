package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/infradeploy/internal/app"
	"github.com/bnema/infradeploy/internal/domain"
)

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "")
	t.Cleanup(func() { Version, Commit, BuildDate = "dev", "unknown", "unknown" })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "infradeploy 1.2.3")
	assert.Contains(t, out.String(), "Commit: abc123")
	assert.Contains(t, out.String(), "Build Date: unknown")
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	cmd := NewRootCmd()

	for _, name := range []string{"up", "down", "status", "restart", "images", "exec", "logs", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestExecCmd_RequiresCommand(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"exec", "cache"})

	assert.Error(t, cmd.Execute())
}

func TestWriteBulk(t *testing.T) {
	var out bytes.Buffer

	writeBulk(&out, "start", domain.BulkResult{
		"api":   nil,
		"cache": errors.New("port already allocated"),
	})

	text := out.String()
	assert.Contains(t, text, "start")
	assert.Contains(t, text, "api")
	assert.Contains(t, text, "cache: port already allocated")
}

func TestWriteBulk_EmptyPrintsNothing(t *testing.T) {
	var out bytes.Buffer
	writeBulk(&out, "start", nil)
	assert.Empty(t, out.String())
}

func TestWriteStatus(t *testing.T) {
	var out bytes.Buffer

	writeStatus(&out, app.StatusReport{
		Images: []app.ImageRow{{Name: "redis:7", Present: true, Tags: []string{"redis:7"}, Size: 2048}},
		Containers: []app.ContainerRow{
			{Name: "cache", Image: "redis:7", ID: "0123456789abcdef", Status: domain.ContainerStatusRunning,
				Stats: &domain.ContainerStats{CPUPercent: 12.5, MemoryUsage: 1024, MemoryLimit: 4096}},
			{Name: "api", Image: "api", Status: domain.ContainerStatusUnknown, Problem: errors.New("engine unreachable")},
		},
		Networks: []app.NetworkRow{{Name: "backend", ID: "n1", Driver: "bridge", Containers: 2}},
		Volumes:  []app.VolumeRow{{Name: "data", Driver: "local", Exists: true, Users: 1}},
		Adopt:    domain.BulkResult{"container/web": domain.ErrNotManaged},
	}, true)

	text := out.String()
	assert.Contains(t, text, "0123456789ab")
	assert.NotContains(t, text, "0123456789abcdef")
	assert.Contains(t, text, "12.5%")
	assert.Contains(t, text, "engine unreachable")
	assert.Contains(t, text, "backend")
	assert.Contains(t, text, "container/web")
}

func TestImageState(t *testing.T) {
	assert.Equal(t, "pulled,tagged", imageState(domain.ImageState{Pulled: true, Tagged: true}))
	assert.Contains(t, imageState(domain.ImageState{}), "-")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "-", shortID(""))
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "0123456789ab", shortID("0123456789abcdef"))
}

func TestDownCmd_VolumesDeclined(t *testing.T) {
	var asked string
	orig := confirm
	confirm = func(message string) (bool, error) {
		asked = message
		return false, nil
	}
	t.Cleanup(func() { confirm = orig })

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"down", "--volumes"})

	err := cmd.Execute()

	assert.ErrorIs(t, err, errCancelled)
	assert.Contains(t, asked, "volumes")
}
