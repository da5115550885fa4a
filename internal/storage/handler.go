package storage

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// Handler exposes the report archive over HTTP for operators: browse the
// snapshot tree and fetch individual report payloads.
type Handler struct {
	archiver Archiver
}

func NewHandler(archiver Archiver) *Handler {
	return &Handler{archiver: archiver}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/archive/snapshots", h.ListSnapshots).Methods("GET")
	r.HandleFunc("/archive/snapshots/{key:.+}", h.GetSnapshot).Methods("GET")
}

func (h *Handler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	prefix := strings.TrimSpace(r.URL.Query().Get("prefix"))

	snapshots, err := h.archiver.ListSnapshots(r.Context(), prefix)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("archive list failed")
		http.Error(w, "failed to list snapshots", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"snapshots": snapshots}); err != nil {
		log.Error().Err(err).Msg("archive list encode failed")
	}
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	payload, err := h.archiver.GetSnapshot(r.Context(), key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("archive get failed")
		http.Error(w, "snapshot not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(payload); err != nil {
		log.Error().Err(err).Str("key", key).Msg("archive get write failed")
	}
}
