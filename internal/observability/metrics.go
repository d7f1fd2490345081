package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// archive loop.
type Metrics struct {
	FetchesTotal     *prometheus.CounterVec // labels: outcome={success,error}
	RecordsPublished prometheus.Counter
	PublishErrors    prometheus.Counter
	FetchDuration    prometheus.Histogram
	ArchiverRunning  prometheus.Gauge
}

// NewMetrics creates and registers all archiver metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		FetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ec_archiver",
			Name:      "fetches_total",
			Help:      "Station-year fetches against the climate portal, by outcome.",
		}, []string{"outcome"}),
		RecordsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ec_archiver",
			Name:      "records_published_total",
			Help:      "Daily records written to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ec_archiver",
			Name:      "publish_errors_total",
			Help:      "Failed batch writes to the sink topic.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ec_archiver",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of one station-year fetch-and-parse.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ArchiverRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ec_archiver",
			Name:      "running",
			Help:      "1 while the archive loop is active, 0 when shut down.",
		}),
	}

	prometheus.MustRegister(
		m.FetchesTotal,
		m.RecordsPublished,
		m.PublishErrors,
		m.FetchDuration,
		m.ArchiverRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		FetchesTotal:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "ec_archiver", Name: "fetches_total"}, []string{"outcome"}),
		RecordsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "ec_archiver", Name: "records_published_total"}),
		PublishErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "ec_archiver", Name: "publish_errors_total"}),
		FetchDuration:    prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "ec_archiver", Name: "fetch_duration_seconds"}),
		ArchiverRunning:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "ec_archiver", Name: "running"}),
	}
}
