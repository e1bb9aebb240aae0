// Package httputil regroupe les réponses JSON et les téléchargements du serveur.
package httputil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

type ErrorBody struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("json encode failed", "error", err)
	}
}

// ErrorLogger est implémenté par les ResponseWriter qui journalisent
// l'erreur renvoyée au client.
type ErrorLogger interface {
	LogError(body ErrorBody)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteErrorBody(w, status, ErrorBody{Error: message})
}

// WriteErrorBody écrit body en JSON et le signale à w s'il journalise.
func WriteErrorBody(w http.ResponseWriter, status int, body ErrorBody) {
	if el, ok := w.(ErrorLogger); ok {
		el.LogError(body)
	}
	WriteJSON(w, status, body)
}

// WriteAttachment envoie body comme fichier à télécharger.
func WriteAttachment(w http.ResponseWriter, filename, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
