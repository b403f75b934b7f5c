package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/infradeploy/internal/domain"
)

const meterName = "infradeploy"

// Metrics holds the OTel instruments recorded by the resource managers and the orchestrator.
type Metrics struct {
	// Resource operations
	Operations metric.Int64Counter

	// Workflows
	WorkflowTotal    metric.Int64Counter
	WorkflowDuration metric.Float64Histogram
	WorkflowFailures metric.Int64Counter
}

// NewMetrics creates the instruments on the global MeterProvider.
// All fields are always initialized; OTel hands out noop instruments when no
// MeterProvider has been installed.
func NewMetrics() (*Metrics, error) {
	return NewMetricsWithProvider(otel.GetMeterProvider())
}

// NewMetricsWithProvider creates the instruments on the given MeterProvider.
func NewMetricsWithProvider(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)
	m := &Metrics{}
	var err error

	if m.Operations, err = meter.Int64Counter("infradeploy.operations",
		metric.WithDescription("Resource operations by resource, operation and outcome")); err != nil {
		return nil, err
	}
	if m.WorkflowTotal, err = meter.Int64Counter("infradeploy.workflow.total",
		metric.WithDescription("Total orchestrator workflow runs")); err != nil {
		return nil, err
	}
	if m.WorkflowDuration, err = meter.Float64Histogram("infradeploy.workflow.duration_seconds",
		metric.WithDescription("Orchestrator workflow duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.5, 1, 5, 10, 30, 60, 120, 300)); err != nil {
		return nil, err
	}
	if m.WorkflowFailures, err = meter.Int64Counter("infradeploy.workflow.failures",
		metric.WithDescription("Orchestrator workflow runs with at least one failed step")); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordOperation counts one resource operation. The outcome attribute is
// "ok" or the error kind.
func (m *Metrics) RecordOperation(ctx context.Context, resource domain.ResourceKind, op string, err error) {
	m.Operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("resource", string(resource)),
		attribute.String("op", op),
		attribute.String("outcome", outcome(err)),
	))
}

// RecordWorkflow records the run count, duration and failure of an orchestrator workflow.
func (m *Metrics) RecordWorkflow(ctx context.Context, report domain.Report) {
	attrs := metric.WithAttributes(attribute.String("workflow", report.Workflow))
	m.WorkflowTotal.Add(ctx, 1, attrs)
	m.WorkflowDuration.Record(ctx, report.Duration().Seconds(), attrs)
	if report.Failed() {
		m.WorkflowFailures.Add(ctx, 1, attrs)
	}
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return domain.KindOf(err).String()
}
