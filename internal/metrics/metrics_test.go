package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.ClientAttempts.WithLabelValues("list", "500").Inc()
	m.ItemsCreated.Add(2)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.ClientAttempts.WithLabelValues("list", "500")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.ItemsCreated))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `itemlist_client_attempts_total{op="list",status="500"} 1`)
	assert.Contains(t, body, "itemlist_items_created_total 2")
}

func TestNewUsesIndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}

func TestRegistryGathersAllCollectors(t *testing.T) {
	m := New()
	m.ClientCalls.WithLabelValues("create", "success").Inc()
	m.HTTPRequests.WithLabelValues("GET", "200").Inc()

	n, err := testutil.GatherAndCount(m.Registry(),
		"itemlist_client_calls_total",
		"itemlist_http_requests_total",
		"itemlist_items_created_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
