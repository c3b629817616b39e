package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveExtraction(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveExtraction(OutcomeOK, 10*time.Millisecond, 3)
	m.ObserveExtraction(OutcomeOK, 20*time.Millisecond, 1)
	m.ObserveExtraction(OutcomeError, time.Millisecond, 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExtractionsTotal.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExtractionsTotal.WithLabelValues(OutcomeError)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.ExtractionsTotal))
}

func TestObserveCache(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheLookupsTotal.WithLabelValues("miss")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveExtraction(OutcomeOK, time.Second, 1)
		m.ObserveCache(true)
		m.ObserveHTTP("GET", "/", "200", time.Millisecond)
		m.HistoryWriteFailed()
	})
}
