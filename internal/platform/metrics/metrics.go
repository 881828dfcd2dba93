package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CafeRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cafes_requests_total",
		Help: "Total number of /cafes requests",
	})
	CafeRequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cafes_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000},
	})
	EmptyResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cafes_empty_results_total",
		Help: "Total number of responses with no cafés found",
	})
	OverpassRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cafes_overpass_requests_total",
		Help: "Total Overpass API requests",
	})
	OverpassFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cafes_overpass_fail_total",
		Help: "Total Overpass API failures",
	})
	OverpassDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cafes_overpass_duration_ms",
		Help:    "Overpass API call duration in milliseconds",
		Buckets: []float64{10, 50, 100, 200, 500, 1000, 2000, 5000, 10000},
	})
	GeoIPRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cafes_geoip_requests_total",
		Help: "Total IP geolocation requests",
	})
	GeoIPFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cafes_geoip_fail_total",
		Help: "Total IP geolocation failures",
	})
)

// Register installs all collectors on the default registry. Call once from
// the composition root before serving.
func Register() {
	prometheus.MustRegister(
		CafeRequestsTotal,
		CafeRequestDurationMs,
		EmptyResultsTotal,
		OverpassRequestsTotal,
		OverpassFailTotal,
		OverpassDurationMs,
		GeoIPRequestsTotal,
		GeoIPFailTotal,
	)
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
