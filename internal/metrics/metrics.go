// Package metrics provides Prometheus metrics collection for the transfer gateway.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// TransferPreviewsTotal tracks preview operations by outcome.
	TransferPreviewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transfer_previews_total",
			Help: "Total number of transfer preview operations",
		},
		[]string{"status"},
	)

	// TransferExecutionsTotal tracks execute operations by outcome.
	TransferExecutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transfer_executions_total",
			Help: "Total number of transfer execute operations",
		},
		[]string{"status"},
	)

	// TransferRejectedLines counts server-rejected preview lines.
	TransferRejectedLines = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transfer_rejected_lines_total",
			Help: "Total number of preview lines rejected by the stock service",
		},
	)

	// TransferUnmatchedLines counts preview rows with no matching cart item.
	TransferUnmatchedLines = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "transfer_unmatched_lines_total",
			Help: "Total number of preview rows without a matching cart item",
		},
	)

	// UpstreamRequestDuration tracks stock service call duration by operation and outcome.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream stock service request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 15.0},
		},
		[]string{"operation", "status"},
	)
)

// RecordPreview records a preview operation outcome.
func RecordPreview(status string) {
	TransferPreviewsTotal.WithLabelValues(status).Inc()
}

// RecordExecution records an execute operation outcome.
func RecordExecution(status string) {
	TransferExecutionsTotal.WithLabelValues(status).Inc()
}

// RecordUpstreamRequest records a single upstream call.
func RecordUpstreamRequest(operation, status string, duration time.Duration) {
	UpstreamRequestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}
