package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggingMiddleware(zerolog.New(&buf))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/teams/enterprise/takes", nil)
	rr := httptest.NewRecorder()

	mw.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if zerolog.Ctx(r.Context()).GetLevel() == zerolog.Disabled {
			t.Fatalf("expected request logger in context")
		}
		w.WriteHeader(http.StatusBadGateway)
	})).ServeHTTP(rr, req)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one json log line, got %q: %v", buf.String(), err)
	}

	if entry["level"] != "error" || entry["status"] != float64(http.StatusBadGateway) {
		t.Fatalf("unexpected log entry %v", entry)
	}
	if entry["path"] != "/api/v1/teams/enterprise/takes" {
		t.Fatalf("unexpected path %v", entry["path"])
	}
}

func TestRecoveryReturnsJSONError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if rr.Body.String() != `{"error":"internal server error"}` {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}
