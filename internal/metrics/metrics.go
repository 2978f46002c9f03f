// internal/metrics/metrics.go
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Catalog
	CacheReadsTotal     *prometheus.CounterVec
	PropertyOpsTotal    *prometheus.CounterVec
	MediaUploadsTotal   *prometheus.CounterVec
	MediaUploadDuration prometheus.Histogram

	// Auth
	LoginAttemptsTotal *prometheus.CounterVec
}

// New registers the service metrics on reg under the given name prefix.
func New(reg prometheus.Registerer, prefix string) *Metrics {
	if prefix == "" {
		prefix = "unihub"
	}
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		CacheReadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_catalog_cache_reads_total",
				Help: "Catalog reads served through the cache, by result",
			},
			[]string{"collection", "result"},
		),
		PropertyOpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_property_operations_total",
				Help: "Total number of admin property operations",
			},
			[]string{"operation", "outcome"},
		),
		MediaUploadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_media_uploads_total",
				Help: "Total number of media uploads, by outcome",
			},
			[]string{"outcome"},
		),
		MediaUploadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    prefix + "_media_upload_duration_seconds",
				Help:    "Duration of media batch uploads in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		LoginAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_admin_login_attempts_total",
				Help: "Total number of admin login attempts, by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) ObserveRequest(method, path string, status int, started time.Time) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, code).Observe(time.Since(started).Seconds())
}

// CacheRead matches the store's read observer signature.
func (m *Metrics) CacheRead(collection string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheReadsTotal.WithLabelValues(collection, result).Inc()
}

func (m *Metrics) PropertyOperation(operation string, err error) {
	if m == nil {
		return
	}
	m.PropertyOpsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

func (m *Metrics) MediaUpload(started time.Time, err error) {
	if m == nil {
		return
	}
	m.MediaUploadsTotal.WithLabelValues(outcome(err)).Inc()
	m.MediaUploadDuration.Observe(time.Since(started).Seconds())
}

func (m *Metrics) LoginAttempt(err error) {
	if m == nil {
		return
	}
	m.LoginAttemptsTotal.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
