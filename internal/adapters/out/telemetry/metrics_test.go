package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/bnema/infradeploy/internal/domain"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetricsWithProvider(mp)
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			out[md.Name] = md.Data
		}
	}
	return out
}

func TestMetrics_RecordOperation_OutcomeAttribute(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordOperation(ctx, domain.ResourceContainer, "start", nil)
	m.RecordOperation(ctx, domain.ResourceContainer, "start",
		domain.NewPreconditionError(domain.ResourceContainer, "c1", "start", domain.ErrContainerNotCreated))
	m.RecordOperation(ctx, domain.ResourceContainer, "start",
		domain.NewRemoteError(domain.ResourceContainer, "c2", "start", errors.New("boom")))
	m.RecordOperation(ctx, domain.ResourceContainer, "start", nil)

	data := collect(t, reader)
	sum, ok := data["infradeploy.operations"].(metricdata.Sum[int64])
	require.True(t, ok)

	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		v, _ := dp.Attributes.Value(attribute.Key("outcome"))
		counts[v.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"ok": 2, "precondition": 1, "remote": 1}, counts)
}

func TestMetrics_RecordWorkflow(t *testing.T) {
	m, reader := newTestMetrics(t)
	start := time.Now()

	m.RecordWorkflow(context.Background(), domain.Report{
		Workflow:   "stop",
		Steps:      []domain.WorkflowStep{{Name: "remove_networks", Result: domain.BulkResult{"n": errors.New("x")}}},
		StartedAt:  start,
		FinishedAt: start.Add(3 * time.Second),
	})

	data := collect(t, reader)

	total, ok := data["infradeploy.workflow.total"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, total.DataPoints, 1)
	assert.Equal(t, int64(1), total.DataPoints[0].Value)

	failures, ok := data["infradeploy.workflow.failures"].(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(1), failures.DataPoints[0].Value)

	hist, ok := data["infradeploy.workflow.duration_seconds"].(metricdata.Histogram[float64])
	require.True(t, ok)
	assert.InDelta(t, 3.0, hist.DataPoints[0].Sum, 0.001)
}

func TestNewMetrics_GlobalProviderIsNoopSafe(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		m.RecordOperation(context.Background(), domain.ResourceImage, "pull", nil)
	})
}
