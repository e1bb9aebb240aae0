// Package server expose le décodage des liens partagés en HTTP :
// piste décodée, segment actif à un instant et téléchargement des exports.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/patrickprogramme/subshare/internal/export"
	"github.com/patrickprogramme/subshare/internal/httputil"
	"github.com/patrickprogramme/subshare/internal/sharelink"
	"github.com/patrickprogramme/subshare/internal/timeline"
	"github.com/patrickprogramme/subshare/pkg/model"
)

const shutdownTimeout = 5 * time.Second

type Config struct {
	Exporter export.Exporter
	// Lang est la langue d'export quand la requête n'en précise pas.
	Lang model.Lang
}

type Server struct {
	router   chi.Router
	exporter export.Exporter
	lang     model.Lang
}

func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Use(slogMiddleware)
	r.Use(middleware.Recoverer)

	lang := cfg.Lang
	if lang == "" {
		lang = model.LangJA
	}
	s := &Server{router: r, exporter: cfg.Exporter, lang: lang}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Route("/api/track", func(r chi.Router) {
		r.Get("/", s.handleTrack)
		r.Get("/active", s.handleActive)
		r.Get("/export", s.handleExport)
	})
}

// ListenAndServe sert jusqu'à l'annulation de ctx puis arrête proprement.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// decodeRequest décode le paramètre "a". Payload absent : 204 ; payload
// illisible : 422. ok == false si la réponse est déjà écrite.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (timeline.Track, bool) {
	payload := r.URL.Query().Get(sharelink.QueryParam)
	logAttrs(r, "payload_len", len(payload))

	track, err := sharelink.Decode(payload)
	if err == nil {
		logAttrs(r, "video_id", track.VideoID, "segments", track.Len())
		return track, true
	}

	if errors.Is(err, sharelink.ErrNoPayload) {
		logAttrs(r, "stage", "absent")
		w.WriteHeader(http.StatusNoContent)
		return timeline.Track{}, false
	}
	var de *sharelink.DecodeError
	if errors.As(err, &de) {
		httputil.WriteErrorBody(w, http.StatusUnprocessableEntity, httputil.ErrorBody{
			Error: de.Err.Error(),
			Stage: de.Stage,
		})
		return timeline.Track{}, false
	}
	httputil.WriteError(w, http.StatusInternalServerError, err.Error())
	return timeline.Track{}, false
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	track, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	httputil.WriteJSON(w, http.StatusOK, track)
}

type activeResponse struct {
	Time    float64 `json:"t"`
	Overlay *int    `json:"overlay"`
	List    *int    `json:"list"`
}

func indexOrNil(i int, ok bool) *int {
	if !ok {
		return nil
	}
	return &i
}

func (s *Server) handleActive(w http.ResponseWriter, r *http.Request) {
	t, err := strconv.ParseFloat(r.URL.Query().Get("t"), 64)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "paramètre t invalide")
		return
	}
	track, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, activeResponse{
		Time:    t,
		Overlay: indexOrNil(track.ActiveForOverlay(t)),
		List:    indexOrNil(track.ActiveForListScroll(t)),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lang := s.lang
	if v := q.Get("lang"); v != "" {
		l, err := model.ParseLang(v)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		lang = l
	}
	format := model.FormatSRT
	if v := q.Get("format"); v != "" {
		f, err := model.ParseFormat(v)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		format = f
	}

	track, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	body, err := s.exporter.Render(track, lang, format)
	if err != nil {
		slog.Error("export failed", "video_id", track.VideoID, "format", format, "error", err)
		httputil.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	httputil.WriteAttachment(w, export.Filename(track.VideoID, format), format.ContentType(), body)
}
