package orchestrator

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
	"github.com/bnema/infradeploy/internal/usecase/containers"
	"github.com/bnema/infradeploy/internal/usecase/images"
	"github.com/bnema/infradeploy/internal/usecase/networks"
)

func testContext() context.Context {
	return zerowrap.WithCtx(context.Background(), zerowrap.Default())
}

type fixture struct {
	runtime      *mocks.MockRuntimeClient
	orchestrator *Orchestrator
	image        *images.Image
}

func newFixture(t *testing.T, cfg Config) fixture {
	rt := mocks.NewMockRuntimeClient(t)
	log := zerowrap.Default()
	return fixture{
		runtime: rt,
		orchestrator: New(
			networks.NewManager(rt, nil, log),
			containers.NewManager(rt, nil, log),
			nil,
			cfg,
			log,
		),
		image: images.NewImage(domain.ImageSpec{Name: "img"}, rt, nil, log),
	}
}

func (f fixture) addNetwork(t *testing.T, name string) {
	_, err := f.orchestrator.Networks().Add(testContext(), domain.NetworkSpec{Name: name})
	require.NoError(t, err)
}

func (f fixture) addContainer(t *testing.T, name string, spec domain.ContainerSpec) *containers.Container {
	c, err := f.orchestrator.Containers().Add(testContext(), name, f.image, spec)
	require.NoError(t, err)
	return c
}

func (f fixture) create(t *testing.T, c *containers.Container, id string) {
	f.runtime.EXPECT().InspectImage(mock.Anything, "img").Return(&domain.ImageInfo{ID: "sha256:img"}, nil).Once()
	f.runtime.EXPECT().CreateContainer(mock.Anything, mock.MatchedBy(func(s *domain.ContainerSpec) bool {
		return s.Name == c.Name()
	})).Return(id, nil).Once()
	require.NoError(t, c.Create(testContext(), domain.ContainerSpec{}))
}

func TestStartInfrastructure_UncreatedContainerIsNeverConnected(t *testing.T) {
	f := newFixture(t, Config{})
	f.addNetwork(t, "net-A")
	f.addContainer(t, "c1", domain.ContainerSpec{})

	f.runtime.EXPECT().CreateNetwork(mock.Anything, mock.MatchedBy(func(s *domain.NetworkSpec) bool {
		return s.Name == "net-A"
	})).Return("net-id", nil).Once()

	report := f.orchestrator.StartInfrastructure(testContext())

	assert.Equal(t, WorkflowStart, report.Workflow)
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Steps, 3)
	assert.Equal(t, StepCreateNetworks, report.Steps[0].Name)
	assert.Equal(t, StepStartContainers, report.Steps[1].Name)
	assert.Equal(t, StepConnectNetworks, report.Steps[2].Name)

	assert.True(t, report.Step(StepCreateNetworks).AllOK())
	require.ErrorIs(t, report.Step(StepStartContainers)["c1"], domain.ErrContainerNotCreated)
	assert.Equal(t, domain.OutcomeEmpty, report.Step(StepConnectNetworks).Outcome())
	assert.True(t, report.Failed())
	f.runtime.AssertNotCalled(t, "ConnectNetwork", mock.Anything, mock.Anything, mock.Anything)
	f.runtime.AssertNotCalled(t, "StartContainer", mock.Anything, mock.Anything)
}

func TestStartInfrastructure_CreatedContainerIsConnectedOnce(t *testing.T) {
	f := newFixture(t, Config{})
	f.addNetwork(t, "net-A")
	c1 := f.addContainer(t, "c1", domain.ContainerSpec{})
	f.create(t, c1, "cid")

	createNet := f.runtime.EXPECT().CreateNetwork(mock.Anything, mock.Anything).Return("net-id", nil).Once()
	start := f.runtime.EXPECT().StartContainer(mock.Anything, "cid").Return(nil).Once()
	connect := f.runtime.EXPECT().ConnectNetwork(mock.Anything, "net-id", "cid").Return(nil).Once()
	mock.InOrder(createNet, start, connect)

	report := f.orchestrator.StartInfrastructure(testContext())

	assert.False(t, report.Failed())
	assert.Equal(t, domain.BulkResult{"c1/net-A": nil}, report.Step(StepConnectNetworks))
}

func TestStartInfrastructure_DoesNotAbortOnFailures(t *testing.T) {
	f := newFixture(t, Config{})
	f.addNetwork(t, "broken")
	f.addNetwork(t, "net-A")
	c1 := f.addContainer(t, "c1", domain.ContainerSpec{})
	f.create(t, c1, "cid")

	f.runtime.EXPECT().CreateNetwork(mock.Anything, mock.MatchedBy(func(s *domain.NetworkSpec) bool {
		return s.Name == "broken"
	})).Return("", errors.New("pool overlaps")).Once()
	f.runtime.EXPECT().CreateNetwork(mock.Anything, mock.MatchedBy(func(s *domain.NetworkSpec) bool {
		return s.Name == "net-A"
	})).Return("net-id", nil).Once()
	f.runtime.EXPECT().StartContainer(mock.Anything, "cid").Return(errors.New("exec format error")).Once()
	f.runtime.EXPECT().ConnectNetwork(mock.Anything, "net-id", "cid").Return(nil).Once()

	report := f.orchestrator.StartInfrastructure(testContext())

	assert.Equal(t, []string{"broken"}, report.Step(StepCreateNetworks).Failed())
	assert.Equal(t, []string{"c1"}, report.Step(StepStartContainers).Failed())
	assert.Equal(t, []string{"c1/net-A"}, report.Step(StepConnectNetworks).Succeeded())
	assert.Error(t, report.Err())
}

func TestStartInfrastructure_TargetNetworks(t *testing.T) {
	f := newFixture(t, Config{ConnectNetworks: []string{LegacyNetwork}})
	f.addNetwork(t, LegacyNetwork)
	f.addNetwork(t, "backend")
	legacy := f.addContainer(t, "legacy", domain.ContainerSpec{})
	api := f.addContainer(t, "api", domain.ContainerSpec{Networks: []string{"backend", "missing"}})
	f.create(t, legacy, "legacy-id")
	f.create(t, api, "api-id")

	f.runtime.EXPECT().CreateNetwork(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, s *domain.NetworkSpec) (string, error) {
			return s.Name + "-id", nil
		}).Twice()
	f.runtime.EXPECT().StartContainer(mock.Anything, mock.Anything).Return(nil).Twice()
	f.runtime.EXPECT().ConnectNetwork(mock.Anything, "c2-network-id", "legacy-id").Return(nil).Once()
	f.runtime.EXPECT().ConnectNetwork(mock.Anything, "backend-id", "api-id").Return(nil).Once()

	report := f.orchestrator.StartInfrastructure(testContext())

	connected := report.Step(StepConnectNetworks)
	assert.Equal(t, []string{"api/backend", "legacy/c2-network"}, connected.Succeeded())
	require.ErrorIs(t, connected["api/missing"], domain.ErrNotRegistered)
}

func TestStopInfrastructure_RemovesContainersBeforeNetworks(t *testing.T) {
	f := newFixture(t, Config{})
	f.addNetwork(t, "net-A")
	c1 := f.addContainer(t, "c1", domain.ContainerSpec{})
	f.create(t, c1, "cid")

	f.runtime.EXPECT().CreateNetwork(mock.Anything, mock.Anything).Return("net-id", nil).Once()
	require.True(t, f.orchestrator.Networks().CreateAll(testContext()).AllOK())

	stop := f.runtime.EXPECT().StopContainer(mock.Anything, "cid", mock.Anything).Return(nil).Once()
	remove := f.runtime.EXPECT().RemoveContainer(mock.Anything, "cid", false).Return(nil).Once()
	removeNet := f.runtime.EXPECT().RemoveNetwork(mock.Anything, "net-id").Return(nil).Once()
	mock.InOrder(stop, remove, removeNet)

	report := f.orchestrator.StopInfrastructure(testContext())

	assert.Equal(t, WorkflowStop, report.Workflow)
	assert.False(t, report.Failed())
	assert.Equal(t, []string{StepStopContainers, StepRemoveContainers, StepRemoveNetworks},
		[]string{report.Steps[0].Name, report.Steps[1].Name, report.Steps[2].Name})
	assert.False(t, c1.Created())
}

func TestStopInfrastructure_RecordsWorkflow(t *testing.T) {
	rt := mocks.NewMockRuntimeClient(t)
	recorder := mocks.NewMockOperationRecorder(t)
	log := zerowrap.Default()
	o := New(networks.NewManager(rt, nil, log), containers.NewManager(rt, nil, log), recorder, Config{}, log)

	var got domain.Report
	recorder.EXPECT().RecordWorkflow(mock.Anything, mock.Anything).
		Run(func(_ context.Context, report domain.Report) { got = report }).
		Return().Once()

	report := o.StopInfrastructure(testContext())

	assert.Equal(t, report.RunID, got.RunID)
	assert.Equal(t, WorkflowStop, got.Workflow)
	assert.False(t, got.FinishedAt.Before(got.StartedAt))
}
