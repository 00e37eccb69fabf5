package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

const (
	StatusOK       = "ok"
	StatusCached   = "cached"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// Metrics records recommendation outcomes through an OpenTelemetry meter
// backed by its own Prometheus registry.
type Metrics struct {
	registry *prometheus.Registry
	provider *metric.MeterProvider

	requests otelmetric.Int64Counter
	duration otelmetric.Float64Histogram
}

func New(serviceName string) (*Metrics, error) {
	reg := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, err
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	meter := provider.Meter(serviceName)

	requests, err := meter.Int64Counter(
		"jobmatch_recommendations",
		otelmetric.WithDescription("Recommendation requests by outcome"),
	)
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram(
		"jobmatch_recommendation_duration",
		otelmetric.WithDescription("Recommendation latency"),
		otelmetric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{registry: reg, provider: provider, requests: requests, duration: duration}, nil
}

func (m *Metrics) RecordRecommendation(ctx context.Context, status string, d time.Duration) {
	if m == nil {
		return
	}
	attrs := otelmetric.WithAttributes(attribute.String("status", status))
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(d.Microseconds())/1000, attrs)
}

// Handler serves the Prometheus exposition of this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil || m.provider == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}
