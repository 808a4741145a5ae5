package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		label      string
		statusCode int
	}{
		{
			name:       "normalizes take path",
			method:     http.MethodGet,
			path:       "/api/v1/teams/enterprise/members/alice/take",
			label:      "/api/v1/teams/{slug}/members/{id}/take",
			statusCode: http.StatusTeapot,
		},
		{
			name:       "keeps non-matching path as-is",
			method:     http.MethodPost,
			path:       "/health",
			label:      "/health",
			statusCode: http.StatusCreated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpRequestsTotal.Reset()
			httpRequestDuration.Reset()
			httpRequestsInFlight.Set(0)

			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(tc.statusCode)
			})

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()

			Metrics(next).ServeHTTP(rr, req)

			if !handlerCalled {
				t.Fatalf("next handler was not invoked")
			}

			if got := testutil.ToFloat64(httpRequestsInFlight); got != 0 {
				t.Fatalf("expected in-flight gauge to return to 0, got %v", got)
			}

			counter := httpRequestsTotal.WithLabelValues(tc.method, tc.label, strconv.Itoa(tc.statusCode))
			if got := testutil.ToFloat64(counter); got != 1 {
				t.Fatalf("expected counter to be 1, got %v", got)
			}
		})
	}
}

func TestMetricsMiddlewareUsesChiPattern(t *testing.T) {
	httpRequestsTotal.Reset()

	r := chi.NewRouter()
	r.Use(Metrics)
	r.Get("/api/v1/teams/{slug}/takes", func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/teams/enterprise/takes", nil))

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/teams/{slug}/takes", "200")
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Fatalf("expected route pattern label, got count %v", got)
	}
}

func TestNormalizePath(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "team path without suffix",
			input:    "/api/v1/teams/enterprise",
			expected: "/api/v1/teams/{slug}",
		},
		{
			name:     "team path with suffix",
			input:    "/api/v1/teams/enterprise/takes",
			expected: "/api/v1/teams/{slug}/takes",
		},
		{
			name:     "member audit path",
			input:    "/api/v1/members/alice/audit",
			expected: "/api/v1/members/{id}/audit",
		},
		{
			name:     "member collection",
			input:    "/api/v1/teams/enterprise/members",
			expected: "/api/v1/teams/{slug}/members",
		},
		{
			name:     "non-matching path",
			input:    "/api/v1/health",
			expected: "/api/v1/health",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizePath(tc.input); got != tc.expected {
				t.Fatalf("normalizePath(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
