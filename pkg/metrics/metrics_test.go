package metrics_test

import (
	"context"
	"registrar/pkg/metrics"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNilRegistrarIsNoop(t *testing.T) {
	var r *metrics.Registrar
	require.NotPanics(t, func() {
		r.RegistrationCreated(context.Background(), "student", "Regular")
		r.AttachmentUploaded(context.Background(), "slides", 10)
		r.BlobOrphaned(context.Background())
	})
}

func TestRegistrarExportsThroughPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)

	r, err := metrics.NewRegistrar(mp)
	require.NoError(t, err)

	ctx := context.Background()
	r.RegistrationCreated(ctx, "student", "Early-bird")
	r.AttachmentUploaded(ctx, "slides", 2048)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.Join(names, ",")
	require.Contains(t, joined, "registrar_registrations_created")
	require.Contains(t, joined, "registrar_attachments_uploaded")
}

func TestNewHTTP_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewHTTP(reg)
	require.NoError(t, err)

	_, err = metrics.NewHTTP(reg)
	require.Error(t, err, "registering the same collector twice should fail")
}
