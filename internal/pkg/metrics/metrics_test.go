package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"parcelhub/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_IndependentRegistries(t *testing.T) {
	first := metrics.New()
	second := metrics.New()

	first.Assignments.WithLabelValues(metrics.Result(nil)).Inc()
	first.Assignments.WithLabelValues(metrics.Result(errors.New("boom"))).Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(first.Assignments.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(first.Assignments.WithLabelValues("error")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(second.Assignments.WithLabelValues("ok")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.ParcelsCreated.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "parcelhub_parcels_created_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
