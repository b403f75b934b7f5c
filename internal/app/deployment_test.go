package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/infradeploy/internal/domain"
)

func TestDeployment_Specs(t *testing.T) {
	buildDir := t.TempDir()
	d := Deployment{
		Networks: []NetworkDescriptor{{Name: "backend", Subnet: "172.30.0.0/16", Labels: []string{"tier=db"}}},
		Volumes:  []VolumeDescriptor{{Name: "pgdata"}},
		Images: []ImageDescriptor{
			{Name: "postgres:16"},
			{Name: "api", BuildContext: buildDir, Tag: "api:dev", BuildArgs: []string{"GO_VERSION=1.24"}},
		},
		Containers: []ContainerDescriptor{{
			Name:        "db",
			Image:       "postgres:16",
			Env:         []string{"POSTGRES_PASSWORD=secret", "PGDATA=/var/lib/postgresql/data"},
			Ports:       []string{"5432:5432", "9187"},
			Volumes:     []string{"pgdata:/var/lib/postgresql/data"},
			Networks:    []string{"backend"},
			Memory:      "1g",
			StopTimeout: "30s",
			Restart:     "unless-stopped",
		}},
	}

	specs, err := d.Specs()
	require.NoError(t, err)

	require.Len(t, specs.Networks, 1)
	assert.Equal(t, domain.DefaultNetworkDriver, specs.Networks[0].Driver)
	require.NotNil(t, specs.Networks[0].IPAM)
	assert.Equal(t, "172.30.0.0/16", specs.Networks[0].IPAM.Pools[0].Subnet)
	assert.Equal(t, "db", specs.Networks[0].Labels["tier"])

	require.Len(t, specs.Volumes, 1)
	assert.Equal(t, domain.DefaultVolumeDriver, specs.Volumes[0].Driver)

	require.Len(t, specs.Images, 2)
	assert.Empty(t, specs.Images[0].BuildPath)
	assert.Equal(t, buildDir, specs.Images[1].BuildPath)
	assert.Equal(t, "api:dev", specs.Images[1].Tag())
	assert.Equal(t, "1.24", specs.Images[1].BuildArgs["GO_VERSION"])

	require.Len(t, specs.Containers, 1)
	db := specs.Containers[0]
	assert.Equal(t, "postgres:16", db.Image)
	assert.Equal(t, "secret", db.Spec.Env["POSTGRES_PASSWORD"])
	assert.Equal(t, map[string]string{"5432": "5432", "9187": ""}, db.Spec.Ports)
	assert.Equal(t, "/var/lib/postgresql/data", db.Spec.Volumes["pgdata"])
	assert.Equal(t, int64(1<<30), db.Spec.MemoryLimit)
	assert.Equal(t, 30*time.Second, db.Spec.StopTimeout)
	assert.Equal(t, []string{"backend"}, db.Spec.Networks)
}

func TestDeployment_Specs_ReportsEveryProblem(t *testing.T) {
	d := Deployment{
		Networks: []NetworkDescriptor{{Name: "bad name"}},
		Images:   []ImageDescriptor{{Name: "nginx"}, {Name: "api", BuildContext: "/does/not/exist"}},
		Containers: []ContainerDescriptor{
			{Name: "web", Image: "nginx", Memory: "lots"},
			{Name: "worker", Image: "missing"},
			{Name: "proxy", Image: "nginx", Env: []string{"NOEQUALS"}},
		},
	}

	specs, err := d.Specs()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	for _, want := range []string{`network "bad name"`, `image "api"`, `container "web"`, `container "worker"`, `container "proxy"`} {
		assert.Contains(t, err.Error(), want)
	}
	assert.Len(t, specs.Images, 1)
	assert.Empty(t, specs.Containers)
}

func TestVolumePairs_RequiresAbsoluteTarget(t *testing.T) {
	_, err := volumePairs([]string{"data:relative"})
	assert.Error(t, err)

	got, err := volumePairs([]string{"/srv/html:/usr/share/nginx/html"})
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/nginx/html", got["/srv/html"])
}

func TestPortPairs(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    map[string]string
		wantErr string
	}{
		{name: "host and container", entries: []string{"8080:80", "53:53/udp"}, want: map[string]string{"80": "8080", "53/udp": "53"}},
		{name: "bare container port", entries: []string{"9187"}, want: map[string]string{"9187": ""}},
		{name: "same port on two protocols", entries: []string{"53:53/tcp", "53:53/udp"}, want: map[string]string{"53/tcp": "53", "53/udp": "53"}},
		{name: "container port published twice", entries: []string{"8080:80", "8081:80"}, wantErr: "published twice"},
		{name: "implicit and explicit tcp collide", entries: []string{"8080:80", "8081:80/tcp"}, wantErr: "published twice"},
		{name: "host ip binding", entries: []string{"127.0.0.1:9090:90"}, wantErr: "host IP"},
		{name: "non numeric container port", entries: []string{"8080:http"}, wantErr: "invalid port mapping"},
		{name: "non numeric host port", entries: []string{"web:80"}, wantErr: "invalid port mapping"},
		{name: "missing container port", entries: []string{"8080:"}, wantErr: "missing container port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := portPairs(tt.entries)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVolumePairs_RejectsDuplicates(t *testing.T) {
	_, err := volumePairs([]string{"data:/a", "data:/b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mounted twice")

	_, err = volumePairs([]string{"data:/srv", "logs:/srv"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "used by both")
}

func TestDeployment_Specs_RejectsConflictingMappings(t *testing.T) {
	d := Deployment{
		Volumes: []VolumeDescriptor{{Name: "data"}},
		Images:  []ImageDescriptor{{Name: "nginx"}},
		Containers: []ContainerDescriptor{
			{Name: "web", Image: "nginx", Ports: []string{"8080:80", "8081:80"}},
			{Name: "admin", Image: "nginx", Ports: []string{"127.0.0.1:9090:90"}},
			{Name: "files", Image: "nginx", Volumes: []string{"data:/a", "data:/b"}},
		},
	}

	specs, err := d.Specs()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	for _, want := range []string{`container "web"`, `container "admin"`, `container "files"`} {
		assert.Contains(t, err.Error(), want)
	}
	assert.Empty(t, specs.Containers)
}
