package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGeneration(t *testing.T) {
	m := New()

	m.ObserveGeneration("relay", "success", 150*time.Millisecond)
	m.ObserveGeneration("relay", "failure", time.Second)
	m.ObserveGeneration("relay", "success", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.generationRequests.WithLabelValues("relay", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generationRequests.WithLabelValues("relay", "failure")))
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Post("/marketing/generate", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/marketing/generate", nil))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/marketing/generate", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/health", "200")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveGeneration("ollama", "success", time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `marketmind_generation_requests_total{backend="ollama",outcome="success"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestRegistryGathersCollectors(t *testing.T) {
	m := New()
	m.ObserveGeneration("gemini", "failure", time.Millisecond)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["marketmind_generation_requests_total"])
	assert.True(t, names["marketmind_generation_duration_seconds"])
	assert.True(t, names["go_goroutines"])
	assert.Equal(t, 1, testutil.CollectAndCount(m.generationRequests))
}
