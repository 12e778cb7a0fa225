package observability_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"travel_catalog/internal/adapters/observability"
	"travel_catalog/internal/domain"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveExternal("firebase", "hotels", 200, 30*time.Millisecond)
	observability.ObserveListing("hotels", 3)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{"travel_http_requests_total", "travel_external_requests_total", "travel_listing_items"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestLogReporter_LogsCategoryAndKind(t *testing.T) {
	var buf bytes.Buffer
	r := observability.NewLogReporter(zerolog.New(&buf))

	r.Report(domain.Hotels, &domain.HTTPStatusError{URL: "x", Status: 500})

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly one log line, got %q", out)
	}
	for _, want := range []string{`"category":"hotels"`, `"kind":"http_status"`, `"level":"error"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %s", want, out)
		}
	}
}

func TestNewLogger_Dev(t *testing.T) {
	l := observability.NewLogger("dev")
	l.Debug().Err(errors.New("noop")).Msg("smoke")
}
