package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	defaultServiceName = "nba-stat-finder"
	otlpPushInterval   = 15 * time.Second
	unitMillis         = "ms"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func (c TelemetryConfig) serviceName() string {
	if c.ServiceName == "" {
		return defaultServiceName
	}
	return c.ServiceName
}

// Setup wires the OpenTelemetry meter provider behind a Recorder.
// The Prometheus reader is always attached; OTLP push is added when an
// endpoint is configured. When disabled, the Recorder only keeps its
// in-memory counters and no handler is returned.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled {
		return NewRecorder(), nil, noop, nil
	}

	readers, handler, err := buildReaders(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.serviceName())))
	if err != nil {
		return nil, nil, nil, err
	}

	opts := make([]sdkmetric.Option, 0, len(readers)+1)
	for _, reader := range readers {
		opts = append(opts, sdkmetric.WithReader(reader))
	}
	opts = append(opts, sdkmetric.WithResource(res))
	provider := sdkmetric.NewMeterProvider(opts...)

	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, err
	}
	return newRecorder(inst), handler, provider.Shutdown, nil
}

func buildReaders(ctx context.Context, cfg TelemetryConfig) ([]sdkmetric.Reader, http.Handler, error) {
	promReader, handler, err := promReaderFactory()
	if err != nil {
		return nil, nil, err
	}
	readers := []sdkmetric.Reader{promReader}
	if cfg.OtlpEndpoint == "" {
		return readers, handler, nil
	}
	otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
	if err != nil {
		return nil, nil, err
	}
	return append(readers, otlpReader), handler, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpPushInterval)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	ctx context.Context

	requests       metric.Int64Counter
	requestLatency metric.Float64Histogram

	providerCalls   metric.Int64Counter
	providerErrors  metric.Int64Counter
	providerLatency metric.Float64Histogram

	reportBuilds  metric.Int64Counter
	reportGames   metric.Int64Histogram
	reportLatency metric.Float64Histogram

	publishes metric.Int64Counter
}

// instrumentBuilder collects the first creation error so instrument setup
// reads as a flat list.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	if b.err != nil {
		return nil
	}
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	b.err = err
	return c
}

func (b *instrumentBuilder) latency(name, desc string) metric.Float64Histogram {
	if b.err != nil {
		return nil
	}
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unitMillis))
	b.err = err
	return h
}

func (b *instrumentBuilder) histogram(name, desc string) metric.Int64Histogram {
	if b.err != nil {
		return nil
	}
	h, err := b.meter.Int64Histogram(name, metric.WithDescription(desc))
	b.err = err
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(defaultServiceName)}
	inst := &otelInstruments{
		ctx:             context.Background(),
		requests:        b.counter("http_requests_total", "Relay requests served."),
		requestLatency:  b.latency("http_request_duration_ms", "Relay request latency."),
		providerCalls:   b.counter("provider_attempts_total", "Upstream calls by provider and operation."),
		providerErrors:  b.counter("provider_errors_total", "Failed upstream calls."),
		providerLatency: b.latency("provider_duration_ms", "Upstream call latency."),
		reportBuilds:    b.counter("report_builds_total", "Daily report builds by outcome."),
		reportGames:     b.histogram("report_games", "Games covered by a successful report."),
		reportLatency:   b.latency("report_build_duration_ms", "Daily report build latency."),
		publishes:       b.counter("summary_publishes_total", "Summaries handed to the stream by outcome."),
	}
	if b.err != nil {
		return nil, b.err
	}
	return inst, nil
}

func outcome(err error) attribute.KeyValue {
	if err != nil {
		return attribute.String(AttrOutcome, "error")
	}
	return attribute.String(AttrOutcome, "ok")
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.requestLatency.Record(o.ctx, millis(duration), attrs)
}

func (o *otelInstruments) recordProviderAttempt(provider, operation string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrProvider, provider),
		attribute.String(AttrOperation, operation),
	)
	o.providerCalls.Add(o.ctx, 1, attrs)
	o.providerLatency.Record(o.ctx, millis(duration), attrs)
	if err != nil {
		o.providerErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordReportBuild(duration time.Duration, games int, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(outcome(err))
	o.reportBuilds.Add(o.ctx, 1, attrs)
	o.reportLatency.Record(o.ctx, millis(duration), attrs)
	if err == nil {
		o.reportGames.Record(o.ctx, int64(games))
	}
}

func (o *otelInstruments) recordPublish(err error) {
	if o == nil {
		return
	}
	o.publishes.Add(o.ctx, 1, metric.WithAttributes(outcome(err)))
}
