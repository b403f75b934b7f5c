package containers

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/infradeploy/internal/domain"
)

func newTestManager(f fixture) *Manager {
	return NewManager(f.runtime, nil, zerowrap.Default())
}

func TestManager_Add_DuplicateKeepsOriginal(t *testing.T) {
	f := newFixture(t, "nginx")
	m := newTestManager(f)
	ctx := testContext()

	first, err := m.Add(ctx, "web", f.image, domain.ContainerSpec{WorkingDir: "/srv"})
	require.NoError(t, err)

	_, err = m.Add(ctx, "web", f.image, domain.ContainerSpec{WorkingDir: "/other"})

	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	got, ok := m.Get("web")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, "/srv", got.Spec().WorkingDir)
}

func TestManager_Add_RequiresImage(t *testing.T) {
	f := newFixture(t, "nginx")
	m := newTestManager(f)

	_, err := m.Add(testContext(), "web", nil, domain.ContainerSpec{})

	require.ErrorIs(t, err, domain.ErrImageNotAvailable)
	assert.Empty(t, m.Names())
}

func TestManager_Remove_Missing(t *testing.T) {
	f := newFixture(t, "nginx")
	m := newTestManager(f)

	err := m.Remove(testContext(), "ghost")

	require.ErrorIs(t, err, domain.ErrNotRegistered)
	assert.True(t, domain.IsPrecondition(err))
}

func TestManager_Get_Missing(t *testing.T) {
	f := newFixture(t, "nginx")
	m := newTestManager(f)

	c, ok := m.Get("ghost")

	assert.False(t, ok)
	assert.Nil(t, c)
}

func TestManager_StartAll_ContinuesAfterFailure(t *testing.T) {
	f := newFixture(t, "nginx")
	m := newTestManager(f)
	ctx := testContext()

	for _, name := range []string{"a", "b", "c"} {
		_, err := m.Add(ctx, name, f.image, domain.ContainerSpec{})
		require.NoError(t, err)
	}
	f.images.EXPECT().InspectImage(mock.Anything, "nginx").Return(&domain.ImageInfo{}, nil)
	f.runtime.EXPECT().CreateContainer(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec *domain.ContainerSpec) (string, error) {
			return "id-" + spec.Name, nil
		})
	created := m.CreateAll(ctx)
	require.True(t, created.AllOK())

	f.runtime.EXPECT().StartContainer(mock.Anything, "id-a").Return(errors.New("port is already allocated")).Once()
	f.runtime.EXPECT().StartContainer(mock.Anything, "id-b").Return(nil).Once()
	f.runtime.EXPECT().StartContainer(mock.Anything, "id-c").Return(nil).Once()

	result := m.StartAll(ctx)

	assert.Equal(t, []string{"a"}, result.Failed())
	assert.Equal(t, []string{"b", "c"}, result.Succeeded())
}

func TestManager_StartAll_UncreatedContainersAreNoOps(t *testing.T) {
	f := newFixture(t, "nginx")
	m := newTestManager(f)
	ctx := testContext()

	_, err := m.Add(ctx, "c1", f.image, domain.ContainerSpec{})
	require.NoError(t, err)

	result := m.StartAll(ctx)

	require.Len(t, result, 1)
	require.ErrorIs(t, result["c1"], domain.ErrContainerNotCreated)
	assert.Equal(t, domain.OutcomeAllFailed, result.Outcome())
}

func TestManager_CreateAll_RejectsCreated(t *testing.T) {
	f := newFixture(t, "nginx")
	m := newTestManager(f)
	ctx := testContext()

	_, err := m.Add(ctx, "web", f.image, domain.ContainerSpec{})
	require.NoError(t, err)

	f.images.EXPECT().InspectImage(mock.Anything, "nginx").Return(&domain.ImageInfo{}, nil).Once()
	f.runtime.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("abc", nil).Once()

	first := m.CreateAll(ctx)
	second := m.CreateAll(ctx)

	assert.Equal(t, domain.BulkResult{"web": nil}, first)
	require.ErrorIs(t, second["web"], domain.ErrAlreadyCreated)
	assert.True(t, domain.IsPrecondition(second["web"]))
}

func TestManager_StopAllThenRemoveAll(t *testing.T) {
	f := newFixture(t, "nginx")
	m := newTestManager(f)
	ctx := testContext()

	_, err := m.Add(ctx, "web", f.image, domain.ContainerSpec{})
	require.NoError(t, err)
	f.images.EXPECT().InspectImage(mock.Anything, "nginx").Return(&domain.ImageInfo{}, nil)
	f.runtime.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("abc", nil)
	require.True(t, m.CreateAll(ctx).AllOK())

	f.runtime.EXPECT().StopContainer(mock.Anything, "abc", mock.Anything).Return(nil).Once()
	f.runtime.EXPECT().RemoveContainer(mock.Anything, "abc", false).Return(nil).Once()

	require.True(t, m.StopAll(ctx).AllOK())
	require.True(t, m.RemoveAll(ctx, false).AllOK())

	c, ok := m.Get("web")
	require.True(t, ok, "RemoveAll keeps containers registered")
	assert.False(t, c.Created())
}

func TestManager_ExecAllAndLogsAll(t *testing.T) {
	f := newFixture(t, "nginx")
	m := newTestManager(f)
	ctx := testContext()

	_, err := m.Add(ctx, "created", f.image, domain.ContainerSpec{})
	require.NoError(t, err)
	f.images.EXPECT().InspectImage(mock.Anything, "nginx").Return(&domain.ImageInfo{}, nil)
	f.runtime.EXPECT().CreateContainer(mock.Anything, mock.Anything).Return("abc", nil)
	require.True(t, m.CreateAll(ctx).AllOK())

	_, err = m.Add(ctx, "pending", f.image, domain.ContainerSpec{})
	require.NoError(t, err)

	f.runtime.EXPECT().ExecInContainer(mock.Anything, "abc", []string{"uptime"}).
		Return(&domain.ExecResult{Stdout: []byte("up 1 day")}, nil)
	f.runtime.EXPECT().ContainerLogs(mock.Anything, "abc", 0).Return([]byte("hello"), nil)

	execs, execResult := m.ExecAll(ctx, []string{"uptime"})
	logs, logsResult := m.LogsAll(ctx, 0)

	assert.Equal(t, "up 1 day", execs["created"].Output())
	assert.NotContains(t, execs, "pending")
	assert.Equal(t, domain.OutcomePartial, execResult.Outcome())
	assert.Equal(t, map[string]string{"created": "hello"}, logs)
	require.ErrorIs(t, logsResult["pending"], domain.ErrContainerNotCreated)
}
