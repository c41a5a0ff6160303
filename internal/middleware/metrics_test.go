package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/atinyakov/catfeed/internal/metrics"
	"github.com/atinyakov/catfeed/internal/middleware"
)

func TestWithMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.WithMetrics)
	r.Put("/api/feedings/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	series := metrics.HTTPRequests.WithLabelValues("/api/feedings/{id}", http.MethodPut, "404")
	before := testutil.ToFloat64(series)

	for _, id := range []string{"1", "2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/feedings/"+id, nil))
	}

	assert.Equal(t, before+2, testutil.ToFloat64(series))
}

func TestWithCORS(t *testing.T) {
	handler := middleware.WithCORS()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/api/feedings", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}
