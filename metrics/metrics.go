// Package metrics exports Prometheus metrics for the viewer:
//   - http_request_total: counter by method, route and status
//   - http_request_duration_seconds: histogram by method and route
//   - http_request_in_flight: gauge of concurrent requests
//   - rate_limiter_buckets_total: gauge of tracked client buckets
//   - page_renders_total: counter by tab and theme
//   - image_asset_present: 1 when the drug image was found on the last probe
//
// Everything is registered with the default registry on package init.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Number of client token buckets currently tracked",
		},
	)

	PageRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_renders_total",
			Help: "Rendered viewer pages",
		},
		[]string{"tab", "theme"},
	)

	ImageAssetPresent = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "image_asset_present",
			Help: "1 when the drug box image was found by the last probe",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(PageRenders)
	prometheus.MustRegister(ImageAssetPresent)
}

// SetImagePresent records the outcome of an image probe
func SetImagePresent(present bool) {
	if present {
		ImageAssetPresent.Set(1)
		return
	}
	ImageAssetPresent.Set(0)
}

// Handler serves the default registry in the exposition format
func Handler() http.Handler {
	return promhttp.Handler()
}
