package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"open-football/internal/projection"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func (h *routerHandlers) handleRecentEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := projection.RecentEventsQuery{TeamSlug: query.Get("team_slug")}
	if raw := query.Get("limit"); raw != "" {
		limit, err := projection.ParseLimit(raw, 0)
		if err != nil {
			writeQueryError(w, r, err)
			return
		}
		q.Limit = &limit
	}

	resp, err := h.service.RecentEvents(r.Context(), q)
	if err != nil {
		writeQueryError(w, r, err)
		return
	}
	writeJSON(w, resp)
}

func (h *routerHandlers) handlePlayerState(w http.ResponseWriter, r *http.Request) {
	id, err := projection.ParsePlayerID(chi.URLParam(r, "player_id"))
	if err != nil {
		writeQueryError(w, r, err)
		return
	}

	resp, err := h.service.PlayerState(r.Context(), id)
	if err != nil {
		writeQueryError(w, r, err)
		return
	}
	writeJSON(w, resp)
}

func (h *routerHandlers) handleTeamAIState(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.TeamAIState(r.Context(), chi.URLParam(r, "team_slug"))
	if err != nil {
		writeQueryError(w, r, err)
		return
	}
	writeJSON(w, resp)
}

func (h *routerHandlers) handleSquadState(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.SquadState(r.Context(), chi.URLParam(r, "team_slug"))
	if err != nil {
		writeQueryError(w, r, err)
		return
	}
	writeJSON(w, resp)
}

func (h *routerHandlers) handleGameDate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GameDate(r.Context())
	if err != nil {
		writeQueryError(w, r, err)
		return
	}
	writeJSON(w, resp)
}

func (h *routerHandlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *routerHandlers) handleReady(w http.ResponseWriter, r *http.Request) {
	ready := false
	if h.readiness != nil {
		ready = h.readiness.Loaded()
	} else {
		_, err := h.service.GameDate(r.Context())
		ready = err == nil
	}

	if !ready {
		writeError(w, projection.ErrNotLoaded.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, map[string]string{"status": "ready"})
}

// statusFor maps a query error to its HTTP status.
func statusFor(err error) int {
	switch projection.ErrorKind(err) {
	case projection.KindNotLoaded:
		return http.StatusServiceUnavailable
	case projection.KindNotFound:
		return http.StatusNotFound
	case projection.KindInvalidInput:
		return http.StatusBadRequest
	}
	if errors.Is(err, context.Canceled) {
		return statusClientClosedRequest
	}
	return http.StatusInternalServerError
}

// statusClientClosedRequest is the de facto status for a caller that went away.
const statusClientClosedRequest = 499

// writeQueryError logs and renders a query error. Server-side faults are
// logged at error level, caller mistakes only at debug.
func writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)

	event := log.Debug()
	switch {
	case code == http.StatusServiceUnavailable:
		event = log.Warn()
	case code >= http.StatusInternalServerError:
		event = log.Error()
	}
	event.
		Err(err).
		Str("kind", projection.ErrorKind(err)).
		Str("path", r.URL.Path).
		Str("request_id", middleware.GetReqID(r.Context())).
		Int("status", code).
		Msg("query failed")

	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error: " + msg
	}
	writeError(w, msg, code)
}

// Helper functions (package-level for reuse)

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
