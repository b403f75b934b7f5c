package containers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/infradeploy/internal/boundaries/out/mocks"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/internal/usecase/images"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

type fixture struct {
	images  *mocks.MockImageRuntime
	runtime *mocks.MockContainerRuntime
	image   *images.Image
}

func newFixture(t *testing.T, imageName string) fixture {
	imgRT := mocks.NewMockImageRuntime(t)
	return fixture{
		images:  imgRT,
		runtime: mocks.NewMockContainerRuntime(t),
		image:   images.NewImage(domain.ImageSpec{Name: imageName}, imgRT, nil, zerowrap.Default()),
	}
}

func (f fixture) container(name string, spec domain.ContainerSpec) *Container {
	return NewContainer(name, f.image, spec, f.runtime, nil, zerowrap.Default())
}

func (f fixture) created(t *testing.T, name, id string) *Container {
	c := f.container(name, domain.ContainerSpec{})
	f.images.EXPECT().InspectImage(mock.Anything, f.image.Ref()).Return(&domain.ImageInfo{ID: "sha256:img"}, nil).Once()
	f.runtime.EXPECT().CreateContainer(mock.Anything, mock.MatchedBy(func(s *domain.ContainerSpec) bool {
		return s.Name == name
	})).Return(id, nil).Once()
	require.NoError(t, c.Create(testContext(), domain.ContainerSpec{}))
	return c
}

func TestContainer_Create_AppliesOverridesAndLabels(t *testing.T) {
	f := newFixture(t, "nginx:1.27")
	ctx := testContext()

	c := f.container("web", domain.ContainerSpec{
		Env:         map[string]string{"A": "1", "B": "2"},
		Ports:       map[string]string{"80/tcp": "8080"},
		StopTimeout: 5 * time.Second,
	})

	f.images.EXPECT().InspectImage(mock.Anything, "nginx:1.27").Return(&domain.ImageInfo{ID: "sha256:img"}, nil)

	var got *domain.ContainerSpec
	f.runtime.EXPECT().CreateContainer(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec *domain.ContainerSpec) (string, error) {
			got = spec
			return "c0ffee", nil
		})

	err := c.Create(ctx, domain.ContainerSpec{
		Cmd: []string{"nginx", "-g", "daemon off;"},
		Env: map[string]string{"B": "override"},
	})

	require.NoError(t, err)
	assert.Equal(t, "c0ffee", c.ID())
	require.NotNil(t, got)
	assert.Equal(t, "web", got.Name)
	assert.Equal(t, "nginx:1.27", got.Image)
	assert.Equal(t, []string{"nginx", "-g", "daemon off;"}, got.Cmd)
	assert.Equal(t, map[string]string{"A": "1", "B": "override"}, got.Env)
	assert.Equal(t, map[string]string{"80/tcp": "8080"}, got.Ports)
	assert.Equal(t, "true", got.Labels[domain.LabelManaged])
	assert.Equal(t, "web", got.Labels[domain.LabelName])
}

func TestContainer_Create_UnknownImageIsRemoteFailure(t *testing.T) {
	f := newFixture(t, "ghost")
	ctx := testContext()
	c := f.container("web", domain.ContainerSpec{})

	f.images.EXPECT().InspectImage(mock.Anything, "ghost").Return(nil, domain.ErrImageNotFound)

	err := c.Create(ctx, domain.ContainerSpec{})

	require.ErrorIs(t, err, domain.ErrImageNotFound)
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
	assert.False(t, c.Created())
}

func TestContainer_Create_AlreadyCreated(t *testing.T) {
	f := newFixture(t, "nginx")
	c := f.created(t, "web", "abc")

	err := c.Create(testContext(), domain.ContainerSpec{})

	require.ErrorIs(t, err, domain.ErrAlreadyCreated)
	assert.Equal(t, "abc", c.ID())
}

func TestContainer_WithoutIDNeverCallsRuntime(t *testing.T) {
	f := newFixture(t, "nginx")
	ctx := testContext()
	c := f.container("web", domain.ContainerSpec{})

	ops := map[string]func() error{
		"start":   func() error { return c.Start(ctx) },
		"stop":    func() error { return c.Stop(ctx) },
		"restart": func() error { return c.Restart(ctx) },
		"pause":   func() error { return c.Pause(ctx) },
		"unpause": func() error { return c.Unpause(ctx) },
		"remove":  func() error { return c.Remove(ctx, true) },
		"inspect": func() error { _, err := c.Inspect(ctx); return err },
		"logs":    func() error { _, err := c.Logs(ctx, 10); return err },
		"exec":    func() error { _, err := c.Exec(ctx, []string{"ls"}); return err },
		"stats":   func() error { _, err := c.ResourceUsage(ctx); return err },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			require.ErrorIs(t, err, domain.ErrContainerNotCreated)
			assert.True(t, domain.IsPrecondition(err))
		})
	}
}

func TestContainer_Lifecycle(t *testing.T) {
	f := newFixture(t, "nginx")
	ctx := testContext()
	c := f.created(t, "web", "abc")

	f.runtime.EXPECT().StartContainer(mock.Anything, "abc").Return(nil)
	f.runtime.EXPECT().PauseContainer(mock.Anything, "abc").Return(nil)
	f.runtime.EXPECT().UnpauseContainer(mock.Anything, "abc").Return(nil)
	f.runtime.EXPECT().RestartContainer(mock.Anything, "abc", time.Duration(0)).Return(nil)
	f.runtime.EXPECT().StopContainer(mock.Anything, "abc", time.Duration(0)).Return(nil)
	f.runtime.EXPECT().RemoveContainer(mock.Anything, "abc", false).Return(nil)

	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.Pause(ctx))
	require.NoError(t, c.Unpause(ctx))
	require.NoError(t, c.Restart(ctx))
	require.NoError(t, c.Stop(ctx))
	assert.Equal(t, "abc", c.ID())

	require.NoError(t, c.Remove(ctx, false))
	assert.Empty(t, c.ID())
}

func TestContainer_RemoveTwiceFailsBothTimes(t *testing.T) {
	f := newFixture(t, "nginx")
	ctx := testContext()
	c := f.created(t, "web", "abc")

	f.runtime.EXPECT().RemoveContainer(mock.Anything, "abc", false).Return(nil).Once()
	require.NoError(t, c.Remove(ctx, false))

	first := c.Remove(ctx, false)
	second := c.Remove(ctx, false)

	require.ErrorIs(t, first, domain.ErrContainerNotCreated)
	require.ErrorIs(t, second, domain.ErrContainerNotCreated)
}

func TestContainer_Remove_FailureKeepsID(t *testing.T) {
	f := newFixture(t, "nginx")
	ctx := testContext()
	c := f.created(t, "web", "abc")

	f.runtime.EXPECT().RemoveContainer(mock.Anything, "abc", false).
		Return(errors.New("You cannot remove a running container"))

	err := c.Remove(ctx, false)

	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
	assert.Equal(t, "abc", c.ID())
}

func TestContainer_Stop_UsesStopTimeout(t *testing.T) {
	f := newFixture(t, "nginx")
	ctx := testContext()
	c := NewContainer("web", f.image, domain.ContainerSpec{StopTimeout: 3 * time.Second}, f.runtime, nil, zerowrap.Default())

	f.images.EXPECT().InspectImage(mock.Anything, "nginx").Return(&domain.ImageInfo{}, nil)
	f.runtime.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("abc", nil)
	f.runtime.EXPECT().StopContainer(mock.Anything, "abc", 3*time.Second).Return(nil)

	require.NoError(t, c.Create(ctx, domain.ContainerSpec{}))
	require.NoError(t, c.Stop(ctx))
}

func TestContainer_Create_OverridesPersistForLifecycle(t *testing.T) {
	f := newFixture(t, "postgres:16")
	ctx := testContext()
	c := f.container("db", domain.ContainerSpec{
		Env:         map[string]string{"PGDATA": "/data"},
		StopTimeout: 3 * time.Second,
	})

	f.images.EXPECT().InspectImage(mock.Anything, "postgres:16").Return(&domain.ImageInfo{}, nil)
	f.runtime.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("abc", nil)
	f.runtime.EXPECT().StopContainer(mock.Anything, "abc", 30*time.Second).Return(nil).Once()
	f.runtime.EXPECT().RestartContainer(mock.Anything, "abc", 30*time.Second).Return(nil).Once()

	require.NoError(t, c.Create(ctx, domain.ContainerSpec{
		Env:         map[string]string{"POSTGRES_DB": "app"},
		StopTimeout: 30 * time.Second,
	}))
	require.NoError(t, c.Stop(ctx))
	require.NoError(t, c.Restart(ctx))

	spec := c.Spec()
	assert.Equal(t, 30*time.Second, spec.StopTimeout)
	assert.Equal(t, map[string]string{"PGDATA": "/data", "POSTGRES_DB": "app"}, spec.Env)
	assert.Equal(t, "postgres:16", spec.Image)
}

func TestContainer_Create_FailureKeepsStoredSpec(t *testing.T) {
	f := newFixture(t, "nginx")
	ctx := testContext()
	c := f.container("web", domain.ContainerSpec{StopTimeout: 3 * time.Second})

	f.images.EXPECT().InspectImage(mock.Anything, "nginx").Return(&domain.ImageInfo{}, nil)
	f.runtime.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("", errors.New("conflict"))

	require.Error(t, c.Create(ctx, domain.ContainerSpec{StopTimeout: time.Minute}))
	assert.Equal(t, 3*time.Second, c.Spec().StopTimeout)
}

func TestContainer_Exec(t *testing.T) {
	f := newFixture(t, "nginx")
	ctx := testContext()
	c := f.created(t, "web", "abc")

	f.runtime.EXPECT().ExecInContainer(mock.Anything, "abc", []string{"cat", "/etc/hostname"}).
		Return(&domain.ExecResult{ExitCode: 0, Stdout: []byte("web\n")}, nil)

	res, err := c.Exec(ctx, []string{"cat", "/etc/hostname"})

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "web\n", res.Output())
}

func TestContainer_Exec_EmptyCommand(t *testing.T) {
	f := newFixture(t, "nginx")
	c := f.created(t, "web", "abc")

	_, err := c.Exec(testContext(), nil)

	require.ErrorIs(t, err, domain.ErrEmptyCommand)
	assert.True(t, domain.IsPrecondition(err))
}

func TestContainer_LogsAndStats(t *testing.T) {
	f := newFixture(t, "nginx")
	ctx := testContext()
	c := f.created(t, "web", "abc")

	f.runtime.EXPECT().ContainerLogs(mock.Anything, "abc", 50).Return([]byte("ready\n"), nil)
	f.runtime.EXPECT().ContainerStats(mock.Anything, "abc").
		Return(&domain.ContainerStats{CPUPercent: 12.5, MemoryUsage: 1024}, nil)

	logs, err := c.Logs(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, "ready\n", logs)

	stats, err := c.ResourceUsage(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, stats.CPUPercent, 0.001)
}

func TestContainer_Inspect_NotFound(t *testing.T) {
	f := newFixture(t, "nginx")
	c := f.created(t, "web", "abc")

	f.runtime.EXPECT().InspectContainer(mock.Anything, "abc").Return(nil, domain.ErrContainerNotFound)

	info, err := c.Inspect(testContext())

	assert.Nil(t, info)
	require.ErrorIs(t, err, domain.ErrContainerNotFound)
	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
}

func TestContainer_Adopt(t *testing.T) {
	t.Run("binds a managed container", func(t *testing.T) {
		f := newFixture(t, "nginx")
		c := f.container("web", domain.ContainerSpec{})
		f.runtime.EXPECT().InspectContainer(mock.Anything, "web").Return(&domain.ContainerInfo{
			ID:     "abc",
			Status: domain.ContainerStatusRunning,
			Labels: domain.ManagedLabels(domain.ResourceContainer, "web", nil),
		}, nil)

		found, err := c.Adopt(testContext())

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "abc", c.ID())
	})

	t.Run("nothing to adopt", func(t *testing.T) {
		f := newFixture(t, "nginx")
		c := f.container("web", domain.ContainerSpec{})
		f.runtime.EXPECT().InspectContainer(mock.Anything, "web").Return(nil, domain.ErrContainerNotFound)

		found, err := c.Adopt(testContext())

		require.NoError(t, err)
		assert.False(t, found)
		assert.False(t, c.Created())
	})

	t.Run("refuses foreign container", func(t *testing.T) {
		f := newFixture(t, "nginx")
		c := f.container("web", domain.ContainerSpec{})
		f.runtime.EXPECT().InspectContainer(mock.Anything, "web").Return(&domain.ContainerInfo{ID: "zzz"}, nil)

		found, err := c.Adopt(testContext())

		assert.False(t, found)
		assert.ErrorIs(t, err, domain.ErrNotManaged)
		assert.True(t, domain.IsPrecondition(err))
		assert.False(t, c.Created())
	})

	t.Run("already created skips the runtime", func(t *testing.T) {
		f := newFixture(t, "nginx")
		c := f.created(t, "web", "abc")

		found, err := c.Adopt(testContext())

		require.NoError(t, err)
		assert.True(t, found)
		f.runtime.AssertNotCalled(t, "InspectContainer", mock.Anything, mock.Anything)
	})
}
