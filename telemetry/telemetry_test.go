package telemetry

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopRegistry(t *testing.T) {
	r := Noop()

	assert.False(t, r.Enabled())
	assert.Nil(t, r.Handler())

	// none of these may panic
	r.NewCounter("c", "c").Inc()
	r.NewGauge("g", "g").Set(3)
	r.NewHistogram("h", "h", nil).Observe(1)
	r.NewCounterVec("cv", "cv", []string{"outcome"}).With("ok").Add(2)
	r.NewHistogramVec("hv", "hv", []string{"outcome"}, nil).With("ok").Observe(1)
}

func TestEnabledRegistryExposesMetrics(t *testing.T) {
	r := New(true)
	require.True(t, r.Enabled())

	r.NewCounterVec("statements_total", "statements", []string{"outcome"}).With("success").Inc()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `sqlgate_statements_total{outcome="success"} 1`)
}
