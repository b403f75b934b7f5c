package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/infradeploy/internal/domain"
)

func TestContainerSpec_Merge(t *testing.T) {
	base := domain.ContainerSpec{
		Name:        "api",
		Image:       "api:latest",
		Cmd:         []string{"serve"},
		Env:         map[string]string{"A": "1", "B": "2"},
		StopTimeout: 10 * time.Second,
	}

	merged := base.Merge(domain.ContainerSpec{
		Env:         map[string]string{"B": "3"},
		Ports:       map[string]string{"8080/tcp": "80"},
		MemoryLimit: 1024,
	})

	assert.Equal(t, []string{"serve"}, merged.Cmd)
	assert.Equal(t, map[string]string{"A": "1", "B": "3"}, merged.Env)
	assert.Equal(t, map[string]string{"8080/tcp": "80"}, merged.Ports)
	assert.Equal(t, int64(1024), merged.MemoryLimit)
	assert.Equal(t, 10*time.Second, merged.StopTimeout)
	assert.Equal(t, "2", base.Env["B"], "base must not be mutated")
}

func TestSpecDefaults(t *testing.T) {
	assert.Equal(t, "bridge", domain.NetworkSpec{Name: "n"}.WithDefaults().Driver)
	assert.Equal(t, "overlay", domain.NetworkSpec{Name: "n", Driver: "overlay"}.WithDefaults().Driver)
	assert.Equal(t, "local", domain.VolumeSpec{Name: "v"}.WithDefaults().Driver)
	assert.Equal(t, "img", domain.ImageSpec{Name: "img"}.Tag())
	assert.Equal(t, "img:dev", domain.ImageSpec{Name: "img", BuildTag: "img:dev"}.Tag())
}

func TestImageState_Available(t *testing.T) {
	assert.False(t, domain.ImageState{}.Available())
	assert.False(t, domain.ImageState{Tagged: true}.Available())
	assert.True(t, domain.ImageState{Pulled: true}.Available())
	assert.True(t, domain.ImageState{Built: true}.Available())
}
