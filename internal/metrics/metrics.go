package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Business metrics
	datasetRows      *prometheus.GaugeVec
	datasetLoads     *prometheus.CounterVec
	aggregatePairs   prometheus.Gauge
	genresTotal      prometheus.Gauge
	viewRenders      *prometheus.CounterVec
	viewRenderTiming *prometheus.HistogramVec
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently in flight",
			},
		),
	}

	reg.MustRegister(r.httpRequestsTotal)
	reg.MustRegister(r.httpRequestDuration)
	reg.MustRegister(r.httpRequestsInFlight)

	// Business metrics
	r.datasetRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "boxoffice_dataset_rows",
			Help: "Rows in the loaded dataset by outcome",
		},
		[]string{"outcome"},
	)
	r.datasetLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boxoffice_dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"status"},
	)
	r.aggregatePairs = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "boxoffice_aggregate_pairs",
			Help: "Number of (year, genre) pairs in the aggregate",
		},
	)
	r.genresTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "boxoffice_genres",
			Help: "Number of distinct genres in the aggregate",
		},
	)
	r.viewRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boxoffice_view_renders_total",
			Help: "Total number of view renders",
		},
		[]string{"view"},
	)
	r.viewRenderTiming = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "boxoffice_view_render_duration_seconds",
			Help:    "View render duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"view"},
	)

	reg.MustRegister(r.datasetRows)
	reg.MustRegister(r.datasetLoads)
	reg.MustRegister(r.aggregatePairs)
	reg.MustRegister(r.genresTotal)
	reg.MustRegister(r.viewRenders)
	reg.MustRegister(r.viewRenderTiming)

	return r
}

// RecordRequest records metrics for an HTTP request.
func (r *Registry) RecordRequest(method, path string, status int, duration float64) {
	statusStr := statusToString(status)
	r.httpRequestsTotal.WithLabelValues(method, path, statusStr).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(duration)
}

// InFlightInc increments in-flight requests.
func (r *Registry) InFlightInc() {
	r.httpRequestsInFlight.Inc()
}

// InFlightDec decrements in-flight requests.
func (r *Registry) InFlightDec() {
	r.httpRequestsInFlight.Dec()
}

// SetDatasetRows sets the row counts of the last successful load.
func (r *Registry) SetDatasetRows(total, movies, excluded, skipped int) {
	r.datasetRows.WithLabelValues("total").Set(float64(total))
	r.datasetRows.WithLabelValues("kept").Set(float64(movies))
	r.datasetRows.WithLabelValues("excluded").Set(float64(excluded))
	r.datasetRows.WithLabelValues("skipped").Set(float64(skipped))
}

// RecordDatasetLoad records a dataset load attempt.
func (r *Registry) RecordDatasetLoad(status string) {
	r.datasetLoads.WithLabelValues(status).Inc()
}

// SetAggregateSize sets the aggregate pair and genre counts.
func (r *Registry) SetAggregateSize(pairs, genres int) {
	r.aggregatePairs.Set(float64(pairs))
	r.genresTotal.Set(float64(genres))
}

// RecordViewRender records a rendered view.
func (r *Registry) RecordViewRender(view string, duration float64) {
	r.viewRenders.WithLabelValues(view).Inc()
	r.viewRenderTiming.WithLabelValues(view).Observe(duration)
}

func statusToString(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
