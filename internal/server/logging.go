package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/patrickprogramme/subshare/internal/httputil"
)

// trackLog accumule les champs ajoutés par les handlers pendant la requête ;
// ils sont écrits sur la même ligne que le statut.
type trackLog struct {
	attrs []any
}

type trackLogKey struct{}

// logAttrs ajoute des paires clé/valeur à la ligne de log de la requête.
func logAttrs(r *http.Request, args ...any) {
	if tl, ok := r.Context().Value(trackLogKey{}).(*trackLog); ok {
		tl.attrs = append(tl.attrs, args...)
	}
}

// responseRecorder garde le statut et l'erreur renvoyée au client.
type responseRecorder struct {
	http.ResponseWriter
	status  int
	errBody *httputil.ErrorBody
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// LogError satisfait httputil.ErrorLogger.
func (rec *responseRecorder) LogError(body httputil.ErrorBody) {
	rec.errBody = &body
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func slogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			next.ServeHTTP(w, r)
			return
		}

		tl := &trackLog{}
		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		began := time.Now()
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), trackLogKey{}, tl)))

		args := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(began).Milliseconds(),
			"remote_addr", r.RemoteAddr,
		}
		args = append(args, tl.attrs...)
		if rec.errBody != nil {
			args = append(args, "error", rec.errBody.Error)
			if rec.errBody.Stage != "" {
				args = append(args, "stage", rec.errBody.Stage)
			}
		}
		slog.Log(r.Context(), levelFor(rec.status), "track request", args...)
	})
}
