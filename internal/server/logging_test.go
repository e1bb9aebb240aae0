package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestSlogMiddleware_LogsRequest(t *testing.T) {
	buf := captureLogs(t)

	r := chi.NewRouter()
	r.Use(slogMiddleware)
	r.Get("/api/track", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/track", nil))

	output := buf.String()
	for _, field := range []string{"level=INFO", "method=GET", "path=/api/track", "status=204", "duration_ms=", "remote_addr="} {
		if !strings.Contains(output, field) {
			t.Errorf("expected log to contain %q, got: %s", field, output)
		}
	}
}

func TestSlogMiddleware_SkipsHealthCheck(t *testing.T) {
	buf := captureLogs(t)

	r := chi.NewRouter()
	r.Use(slogMiddleware)
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if buf.Len() != 0 {
		t.Errorf("expected no log output for /api/health, got: %s", buf.String())
	}
}

func TestSlogMiddleware_LogsDecodeOutcome(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   []string
		absent []string
	}{
		{
			name:   "decoded",
			target: withPayload("/api/track", twoSegments, nil),
			want:   []string{"status=200", "payload_len=" + strconv.Itoa(len(twoSegments)), "video_id=dQw4w9WgXcQ", "segments=2"},
			absent: []string{"stage=", "error="},
		},
		{
			name:   "absent payload",
			target: "/api/track",
			want:   []string{"status=204", "payload_len=0", "stage=absent"},
			absent: []string{"video_id="},
		},
		{
			name:   "wrong type for v",
			target: withPayload("/api/track/active", wrongSchema, url.Values{"t": {"1"}}),
			want:   []string{"level=WARN", "status=422", "payload_len=13", "stage=parse", "error="},
			absent: []string{"video_id="},
		},
		{
			name:   "bad time",
			target: "/api/track/active?t=abc",
			want:   []string{"level=WARN", "status=400", `error="paramètre t invalide"`},
			absent: []string{"payload_len="},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)
			get(t, newTestServer(), tt.target)

			output := buf.String()
			for _, field := range tt.want {
				if !strings.Contains(output, field) {
					t.Errorf("expected log to contain %q, got: %s", field, output)
				}
			}
			for _, field := range tt.absent {
				if strings.Contains(output, field) {
					t.Errorf("expected log without %q, got: %s", field, output)
				}
			}
		})
	}
}
