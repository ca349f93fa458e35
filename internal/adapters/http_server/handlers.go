package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"huduma_finder/internal/adapters/observability"
	"huduma_finder/internal/app"
	"huduma_finder/internal/domain"
)

type Handlers struct {
	Engine   *app.Engine
	Sessions domain.SessionStore
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Reply     string `json:"reply"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/chat", h.chat)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "request body must be JSON")
		return
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	if req.SessionID == "" || len(req.SessionID) > 128 {
		writeProblem(w, http.StatusBadRequest, "Invalid session_id", "session_id is required and at most 128 characters")
		return
	}

	ctx := r.Context()
	sess, found, err := h.Sessions.Get(ctx, req.SessionID)
	if err != nil {
		log.Error().Err(err).Str("session", req.SessionID).Msg("session load failed")
		writeProblem(w, http.StatusInternalServerError, "Session store unavailable", "")
		return
	}
	if !found {
		sess = domain.NewSession()
	}

	next, reply := h.Engine.Process(ctx, sess, req.Message)
	observability.ObserveChatTurn(string(next.State))

	if err := h.Sessions.Put(ctx, req.SessionID, next); err != nil {
		log.Error().Err(err).Str("session", req.SessionID).Msg("session save failed")
		writeProblem(w, http.StatusInternalServerError, "Session store unavailable", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(chatResponse{
		SessionID: req.SessionID,
		State:     string(next.State),
		Reply:     reply,
	}); err != nil {
		log.Error().Err(err).Msg("failed to write chat response")
	}
}
