// Package telemetry wires OpenTelemetry for infradeploy: orchestrator
// workflow spans and per-operation counters, both shipped over OTLP/HTTP.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config is the telemetry section of infradeploy.yaml.
type Config struct {
	Enabled         bool    `mapstructure:"enabled"`
	Endpoint        string  `mapstructure:"endpoint"`   // collector base URL, e.g. "http://localhost:4318"
	AuthToken       string  `mapstructure:"auth_token"` // sent as HTTP basic credentials
	Traces          bool    `mapstructure:"traces"`
	Metrics         bool    `mapstructure:"metrics"`
	TraceSampleRate float64 `mapstructure:"trace_sample_rate"`
}

// Provider exposes the SDK providers installed as the otel globals. Both are
// nil when the matching signal is off.
type Provider struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
}

// collector is a parsed OTLP/HTTP endpoint.
type collector struct {
	host     string
	prefix   string
	insecure bool
	headers  map[string]string
}

func newCollector(cfg Config) (collector, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return collector{}, fmt.Errorf("invalid telemetry endpoint: %w", err)
	}
	if u.Host == "" {
		return collector{}, fmt.Errorf("telemetry endpoint %q has no host", cfg.Endpoint)
	}

	c := collector{
		host:     u.Host,
		insecure: u.Scheme == "http",
		headers:  map[string]string{},
	}
	if p := path.Clean("/" + u.Path); p != "/" {
		c.prefix = p
	}
	if cfg.AuthToken != "" {
		c.headers["Authorization"] = "Basic " + cfg.AuthToken
	}
	return c, nil
}

func (c collector) signalPath(signal string) string {
	return c.prefix + "/v1/" + signal
}

func (c collector) traceExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(c.host),
		otlptracehttp.WithURLPath(c.signalPath("traces")),
		otlptracehttp.WithHeaders(c.headers),
	}
	if c.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return exp, nil
}

func (c collector) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(c.host),
		otlpmetrichttp.WithURLPath(c.signalPath("metrics")),
		otlpmetrichttp.WithHeaders(c.headers),
	}
	if c.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return exp, nil
}

// Exporter constructors, replaced in tests.
var (
	newTraceExporter  = collector.traceExporter
	newMetricExporter = collector.metricExporter
)

// sampler maps a rate onto a sampler: 0 or below never samples, 1 or above
// always does.
func sampler(rate float64) sdktrace.Sampler {
	switch {
	case rate <= 0:
		return sdktrace.NeverSample()
	case rate >= 1:
		return sdktrace.AlwaysSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))
	}
}

// NewProvider installs the providers enabled in cfg as the otel globals.
// With telemetry disabled it returns an empty Provider and a no-op shutdown.
// Call shutdown before exit to flush pending spans and metrics.
func NewProvider(ctx context.Context, cfg Config, serviceName, version string) (*Provider, func(context.Context), error) {
	p := &Provider{}
	var stops []func(context.Context) error
	shutdown := func(ctx context.Context) {
		var errs []error
		for i := len(stops) - 1; i >= 0; i-- {
			errs = append(errs, stops[i](ctx))
		}
		if err := errors.Join(errs...); err != nil {
			otel.Handle(err)
		}
	}

	if !cfg.Enabled || cfg.Endpoint == "" || (!cfg.Traces && !cfg.Metrics) {
		return p, shutdown, nil
	}

	target, err := newCollector(cfg)
	if err != nil {
		return nil, shutdown, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(serviceName), semconv.ServiceVersion(version)),
		resource.WithHost(),
		resource.WithProcessPID(),
	)
	if err != nil {
		return nil, shutdown, fmt.Errorf("failed to describe telemetry resource: %w", err)
	}

	// Both exporters are built before anything is installed, so a failure
	// leaves the otel globals untouched.
	var traceExp sdktrace.SpanExporter
	if cfg.Traces {
		if traceExp, err = newTraceExporter(target, ctx); err != nil {
			return nil, shutdown, fmt.Errorf("failed to create trace exporter: %w", err)
		}
	}
	var metricExp sdkmetric.Exporter
	if cfg.Metrics {
		if metricExp, err = newMetricExporter(target, ctx); err != nil {
			if traceExp != nil {
				_ = traceExp.Shutdown(ctx)
			}
			return nil, shutdown, fmt.Errorf("failed to create metric exporter: %w", err)
		}
	}

	if traceExp != nil {
		p.TracerProvider = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(traceExp),
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sampler(cfg.TraceSampleRate)),
		)
		otel.SetTracerProvider(p.TracerProvider)
		stops = append(stops, p.TracerProvider.Shutdown)
	}
	if metricExp != nil {
		p.MeterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
			sdkmetric.WithResource(res),
		)
		otel.SetMeterProvider(p.MeterProvider)
		stops = append(stops, p.MeterProvider.Shutdown)
	}

	return p, shutdown, nil
}
