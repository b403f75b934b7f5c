package volumes

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/infradeploy/internal/boundaries/out/mocks"
	"github.com/bnema/infradeploy/internal/domain"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

func createdVolume(t *testing.T, m *Manager, rt *mocks.MockVolumeRuntime, name string) *Volume {
	v, err := m.Add(testContext(), domain.VolumeSpec{Name: name})
	require.NoError(t, err)
	rt.EXPECT().CreateVolume(mock.Anything, mock.MatchedBy(func(s *domain.VolumeSpec) bool {
		return s.Name == name
	})).Return(name, nil).Once()
	require.NoError(t, v.Create(testContext()))
	return v
}

func TestVolume_Create_DefaultsDriver(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	v := NewVolume(domain.VolumeSpec{Name: "data", DriverOpts: map[string]string{"type": "tmpfs"}}, rt, nil, zerowrap.Default())

	var got *domain.VolumeSpec
	rt.EXPECT().CreateVolume(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec *domain.VolumeSpec) (string, error) {
			got = spec
			return "data", nil
		})

	require.NoError(t, v.Create(testContext()))

	assert.Equal(t, "data", v.ID())
	assert.Equal(t, domain.DefaultVolumeDriver, got.Driver)
	assert.Equal(t, "tmpfs", got.DriverOpts["type"])
	assert.Equal(t, "volume", got.Labels[domain.LabelResource])
}

func TestVolume_WithoutIDNeverCallsRuntime(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	v := NewVolume(domain.VolumeSpec{Name: "data"}, rt, nil, zerowrap.Default())
	ctx := testContext()

	_, inspectErr := v.Inspect(ctx)
	inUse, inUseErr := v.InUse(ctx)

	require.ErrorIs(t, inspectErr, domain.ErrVolumeNotCreated)
	require.ErrorIs(t, inUseErr, domain.ErrVolumeNotCreated)
	require.ErrorIs(t, v.Remove(ctx), domain.ErrVolumeNotCreated)
	assert.False(t, inUse)
}

func TestVolume_InUse(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	m := NewManager(rt, nil, zerowrap.Default())
	v := createdVolume(t, m, rt, "data")

	rt.EXPECT().VolumeUsers(mock.Anything, "data").Return([]string{"c1"}, nil).Once()
	rt.EXPECT().VolumeUsers(mock.Anything, "data").Return(nil, nil).Once()

	first, err := v.InUse(testContext())
	require.NoError(t, err)
	second, err := v.InUse(testContext())
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestVolume_Inspect(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	m := NewManager(rt, nil, zerowrap.Default())
	v := createdVolume(t, m, rt, "data")

	rt.EXPECT().InspectVolume(mock.Anything, "data").
		Return(&domain.VolumeInfo{Name: "data", Mountpoint: "/var/lib/docker/volumes/data/_data"}, nil)

	info, err := v.Inspect(testContext())

	require.NoError(t, err)
	assert.Equal(t, "/var/lib/docker/volumes/data/_data", info.Mountpoint)
}

func TestManager_RemoveVolume_InUseStaysRegistered(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	m := NewManager(rt, nil, zerowrap.Default())
	v := createdVolume(t, m, rt, "data")

	rt.EXPECT().VolumeUsers(mock.Anything, "data").Return([]string{"c1"}, nil)

	err := m.RemoveVolume(testContext(), "data")

	require.ErrorIs(t, err, domain.ErrVolumeInUse)
	assert.True(t, domain.IsPrecondition(err))
	got, ok := m.Get("data")
	require.True(t, ok)
	assert.Same(t, v, got)
	assert.True(t, v.Created())
}

func TestManager_RemoveVolume_Unused(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	m := NewManager(rt, nil, zerowrap.Default())
	createdVolume(t, m, rt, "data")

	rt.EXPECT().VolumeUsers(mock.Anything, "data").Return([]string{}, nil)
	rt.EXPECT().RemoveVolume(mock.Anything, "data", false).Return(nil).Once()

	require.NoError(t, m.RemoveVolume(testContext(), "data"))

	_, ok := m.Get("data")
	assert.False(t, ok)
}

func TestManager_RemoveVolume_RuntimeFailureStaysRegistered(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	m := NewManager(rt, nil, zerowrap.Default())
	createdVolume(t, m, rt, "data")

	rt.EXPECT().VolumeUsers(mock.Anything, "data").Return(nil, nil)
	rt.EXPECT().RemoveVolume(mock.Anything, "data", false).Return(errors.New("volume is busy"))

	err := m.RemoveVolume(testContext(), "data")

	assert.Equal(t, domain.KindRemote, domain.KindOf(err))
	assert.Equal(t, []string{"data"}, m.Names())
}

func TestManager_RemoveVolume_UncreatedIsOnlyUnregistered(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	m := NewManager(rt, nil, zerowrap.Default())

	_, err := m.Add(testContext(), domain.VolumeSpec{Name: "cache"})
	require.NoError(t, err)

	require.NoError(t, m.RemoveVolume(testContext(), "cache"))
	assert.Empty(t, m.Names())
}

func TestManager_RemoveVolume_Missing(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	m := NewManager(rt, nil, zerowrap.Default())

	err := m.RemoveVolume(testContext(), "ghost")

	require.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestManager_Add_Duplicate(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	m := NewManager(rt, nil, zerowrap.Default())

	_, err := m.Add(testContext(), domain.VolumeSpec{Name: "data", Driver: "nfs"})
	require.NoError(t, err)
	_, err = m.Add(testContext(), domain.VolumeSpec{Name: "data"})

	require.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	got, _ := m.Get("data")
	assert.Equal(t, "nfs", got.Spec().Driver)
}

func TestManager_RemoveAll_SkipsInUse(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	recorder := mocks.NewMockOperationRecorder(t)
	m := NewManager(rt, recorder, zerowrap.Default())

	recorder.EXPECT().RecordOperation(mock.Anything, domain.ResourceVolume, mock.Anything, mock.Anything).Return()

	createdVolume(t, m, rt, "busy")
	createdVolume(t, m, rt, "free")

	rt.EXPECT().VolumeUsers(mock.Anything, "busy").Return([]string{"c1", "c2"}, nil)
	rt.EXPECT().VolumeUsers(mock.Anything, "free").Return(nil, nil)
	rt.EXPECT().RemoveVolume(mock.Anything, "free", false).Return(nil).Once()

	result := m.RemoveAll(testContext())

	require.ErrorIs(t, result["busy"], domain.ErrVolumeInUse)
	require.NoError(t, result["free"])
	busy, _ := m.Get("busy")
	assert.True(t, busy.Created())
	assert.Equal(t, []string{"busy", "free"}, m.Names())
}

func TestManager_CreateAll(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	m := NewManager(rt, nil, zerowrap.Default())

	for _, name := range []string{"a", "b"} {
		_, err := m.Add(testContext(), domain.VolumeSpec{Name: name})
		require.NoError(t, err)
	}
	rt.EXPECT().CreateVolume(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, spec *domain.VolumeSpec) (string, error) {
			return spec.Name, nil
		}).Twice()

	result := m.CreateAll(testContext())

	assert.Equal(t, domain.OutcomeAllSucceeded, result.Outcome())
}

func TestManager_AdoptAll(t *testing.T) {
	rt := mocks.NewMockVolumeRuntime(t)
	m := NewManager(rt, nil, zerowrap.Default())
	data, err := m.Add(testContext(), domain.VolumeSpec{Name: "data"})
	require.NoError(t, err)
	cache, err := m.Add(testContext(), domain.VolumeSpec{Name: "cache"})
	require.NoError(t, err)

	rt.EXPECT().InspectVolume(mock.Anything, "data").Return(&domain.VolumeInfo{
		Name:   "data",
		Labels: domain.ManagedLabels(domain.ResourceVolume, "data", nil),
	}, nil)
	rt.EXPECT().InspectVolume(mock.Anything, "cache").Return(nil, domain.ErrVolumeNotFound)

	result := m.AdoptAll(testContext())

	assert.True(t, result.AllOK())
	assert.Equal(t, "data", data.ID())
	assert.False(t, cache.Created())
}
