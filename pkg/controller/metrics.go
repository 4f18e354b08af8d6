package controller

import (
	"net/http"
	"registrar/pkg/metrics"
	"strconv"
	"time"
)

// WithMetrics returns a middleware that records request latency by method,
// matched route and status code. Routes are taken from the chi route pattern
// so path parameters do not explode label cardinality.
func WithMetrics(m *metrics.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			m.Duration.
				WithLabelValues(r.Method, routePattern(r), strconv.Itoa(rec.status)).
				Observe(time.Since(start).Seconds())
		})
	}
}
