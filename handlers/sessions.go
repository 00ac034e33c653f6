// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/session"
)

type SessionHandler struct {
	sessions *session.Store
}

func NewSessionHandler(sessions *session.Store) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	// An empty body means the default role
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.BodyErrorResponse(w, err)
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = session.RoleVoter
	}
	if !session.ValidRole(role) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "role must be voter or candidate")
		return
	}

	s := h.sessions.Create(role)

	slog.Info("session started", "role", role, "active_sessions", h.sessions.Len())

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionToken: s.Token,
		Role:         s.Role,
		CreatedAt:    s.CreatedAt,
	})
}

// GetSession handles GET /sessions/me
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.sessions)
	if !ok {
		return
	}

	choices := s.Ballot.Choices()
	ids := make([]int64, 0, len(choices))
	for id := range choices {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	votes := make([]models.VoteRecord, 0, len(ids))
	for _, id := range ids {
		votes = append(votes, models.VoteRecord{ElectionID: id, CandidateID: choices[id]})
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionInfoResponse{
		Role:       s.Role,
		CreatedAt:  s.CreatedAt,
		LastSeenAt: s.LastSeen(),
		Votes:      votes,
	})
}

// EndSession handles DELETE /sessions/me
func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.sessions)
	if !ok {
		return
	}

	if err := h.sessions.End(s.Token); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Session not found or expired")
		return
	}

	slog.Info("session ended", "role", s.Role)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Session ended",
	})
}

// requireSession writes a 401 and returns false when the request has no live session
func requireSession(w http.ResponseWriter, r *http.Request, store *session.Store) (*session.Session, bool) {
	s, err := lookupSession(store, r)
	if errors.Is(err, errNoSessionHeader) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, SessionHeader+" header required")
		return nil, false
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Session not found or expired")
		return nil, false
	}
	return s, true
}
