package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"OK", http.StatusOK},
		{"BadRequest", http.StatusBadRequest},
		{"Unprocessable", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			WriteJSON(recorder, tt.statusCode, map[string]string{"key": "value"})

			if recorder.Code != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, recorder.Code)
			}
			if ct := recorder.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteError(recorder, http.StatusUnprocessableEntity, "payload illisible")

	var body ErrorBody
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error != "payload illisible" || body.Stage != "" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestWriteAttachment(t *testing.T) {
	recorder := httptest.NewRecorder()

	WriteAttachment(recorder, "CAPTION_abc.srt", "application/x-subrip", []byte("0\n"))

	if got := recorder.Header().Get("Content-Disposition"); got != `attachment; filename="CAPTION_abc.srt"` {
		t.Errorf("Content-Disposition = %s", got)
	}
	if got := recorder.Header().Get("Content-Type"); got != "application/x-subrip" {
		t.Errorf("Content-Type = %s", got)
	}
	if recorder.Body.String() != "0\n" {
		t.Errorf("body = %q", recorder.Body.String())
	}
}

type loggingRecorder struct {
	*httptest.ResponseRecorder
	logged []ErrorBody
}

func (l *loggingRecorder) LogError(body ErrorBody) {
	l.logged = append(l.logged, body)
}

func TestWriteErrorBodyNotifiesLogger(t *testing.T) {
	recorder := &loggingRecorder{ResponseRecorder: httptest.NewRecorder()}

	WriteErrorBody(recorder, http.StatusUnprocessableEntity, ErrorBody{Error: "flux tronqué", Stage: "decompress"})
	WriteError(recorder, http.StatusBadRequest, "paramètre t invalide")

	if len(recorder.logged) != 2 {
		t.Fatalf("expected 2 logged errors, got %d", len(recorder.logged))
	}
	if recorder.logged[0].Stage != "decompress" || recorder.logged[1].Error != "paramètre t invalide" {
		t.Errorf("unexpected logged bodies %+v", recorder.logged)
	}
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected first status to stick, got %d", recorder.Code)
	}
}
