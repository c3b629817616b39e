// Package metrics defines the Prometheus collectors exported by the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Extraction outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeNotReady   = "not_ready"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
)

// Metrics holds all collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	ExtractionsTotal     *prometheus.CounterVec
	ExtractionDuration   prometheus.Histogram
	KeywordsPerExtract   prometheus.Histogram
	CacheLookupsTotal    *prometheus.CounterVec
	HistoryFailuresTotal prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skillscan_http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "skillscan_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		ExtractionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skillscan_extractions_total",
				Help: "Keyword extractions by outcome (ok, not_ready, bad_request, error).",
			},
			[]string{"outcome"},
		),
		ExtractionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "skillscan_extraction_duration_seconds",
				Help:    "Time spent in the NLP pipeline per extraction.",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		KeywordsPerExtract: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "skillscan_keywords_per_extraction",
				Help:    "Number of keywords returned per successful extraction.",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
			},
		),
		CacheLookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "skillscan_cache_lookups_total",
				Help: "Result cache lookups by result (hit, miss).",
			},
			[]string{"result"},
		),
		HistoryFailuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "skillscan_history_write_failures_total",
				Help: "Extractions that could not be written to history.",
			},
		),
	}
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ExtractionsTotal,
		m.ExtractionDuration,
		m.KeywordsPerExtract,
		m.CacheLookupsTotal,
		m.HistoryFailuresTotal,
	)
	return m
}

// ObserveExtraction records one extraction attempt.
func (m *Metrics) ObserveExtraction(outcome string, took time.Duration, keywords int) {
	if m == nil {
		return
	}
	m.ExtractionsTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	m.ExtractionDuration.Observe(took.Seconds())
	m.KeywordsPerExtract.Observe(float64(keywords))
}

// ObserveCache records a cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookupsTotal.WithLabelValues(result).Inc()
}

// HistoryWriteFailed counts a failed history insert.
func (m *Metrics) HistoryWriteFailed() {
	if m == nil {
		return
	}
	m.HistoryFailuresTotal.Inc()
}

// ObserveHTTP records a served request.
func (m *Metrics) ObserveHTTP(method, path, status string, took time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(took.Seconds())
}

// Handler returns the scrape handler for the given gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
