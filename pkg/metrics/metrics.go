// Package metrics holds the Prometheus collectors and OpenTelemetry
// instruments shared by the API server, the services and the workers.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// SizeBuckets are histogram buckets in bytes sized around the upload limit.
var SizeBuckets = []float64{ //nolint: gochecknoglobals
	16 << 10, 64 << 10, 256 << 10, 1 << 20, 2 << 20, 5 << 20, 10 << 20,
}

const meterName = "registrar"

// NewMeterProvider creates an OpenTelemetry meter provider whose readings are
// exported through the given Prometheus registerer.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// HTTP collects per-route request metrics for the API server.
type HTTP struct {
	Duration *prometheus.HistogramVec
}

// NewHTTP registers the HTTP collectors with reg.
func NewHTTP(reg prometheus.Registerer) (*HTTP, error) {
	h := &HTTP{
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "registrar",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests by method, route and status code.",
			Buckets:   DefaultBuckets,
		}, []string{"method", "route", "code"}),
	}
	if err := reg.Register(h.Duration); err != nil {
		return nil, fmt.Errorf("could not register http duration histogram: %w", err)
	}

	return h, nil
}

// Registrar records domain events. A nil *Registrar is valid and records nothing.
type Registrar struct {
	registrations metric.Int64Counter
	uploads       metric.Int64Counter
	uploadBytes   metric.Int64Histogram
	orphanBlobs   metric.Int64Counter
}

// NewRegistrar creates the domain instruments on the given meter provider.
func NewRegistrar(mp metric.MeterProvider) (*Registrar, error) {
	meter := mp.Meter(meterName)

	registrations, err := meter.Int64Counter("registrar.registrations.created",
		metric.WithDescription("Number of registrations created."))
	if err != nil {
		return nil, fmt.Errorf("could not create registrations counter: %w", err)
	}
	uploads, err := meter.Int64Counter("registrar.attachments.uploaded",
		metric.WithDescription("Number of attachment versions stored."))
	if err != nil {
		return nil, fmt.Errorf("could not create uploads counter: %w", err)
	}
	uploadBytes, err := meter.Int64Histogram("registrar.attachments.size",
		metric.WithUnit("By"),
		metric.WithDescription("Size of stored attachments."),
		metric.WithExplicitBucketBoundaries(SizeBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create upload size histogram: %w", err)
	}
	orphanBlobs, err := meter.Int64Counter("registrar.blobs.orphaned",
		metric.WithDescription("Number of blobs left without an attachment record."))
	if err != nil {
		return nil, fmt.Errorf("could not create orphan blob counter: %w", err)
	}

	return &Registrar{
		registrations: registrations,
		uploads:       uploads,
		uploadBytes:   uploadBytes,
		orphanBlobs:   orphanBlobs,
	}, nil
}

// RegistrationCreated counts a new registration.
func (r *Registrar) RegistrationCreated(ctx context.Context, category, phase string) {
	if r == nil {
		return
	}
	r.registrations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", category),
		attribute.String("phase", phase),
	))
}

// AttachmentUploaded counts a stored attachment and records its size.
func (r *Registrar) AttachmentUploaded(ctx context.Context, attachmentType string, size int64) {
	if r == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("type", attachmentType))
	r.uploads.Add(ctx, 1, attrs)
	r.uploadBytes.Record(ctx, size, attrs)
}

// BlobOrphaned counts a blob whose attachment record could not be appended.
func (r *Registrar) BlobOrphaned(ctx context.Context) {
	if r == nil {
		return
	}
	r.orphanBlobs.Add(ctx, 1)
}
