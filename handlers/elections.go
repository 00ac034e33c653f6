// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/ballot-box/auth"
	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/db"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/session"
)

type ElectionHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *session.Store
	now      Clock
}

func NewElectionHandler(db *sql.DB, cfg cliparse.Config, sessions *session.Store, now Clock) *ElectionHandler {
	return &ElectionHandler{db: db, cfg: cfg, sessions: sessions, now: now}
}

// ListElections handles GET /elections
func (h *ElectionHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	var filter election.Status
	if v := r.URL.Query().Get("status"); v != "" {
		s, ok := election.ParseStatus(v)
		if !ok {
			middleware.ErrorResponse(w, http.StatusBadRequest, "status must be Upcoming, Ongoing or Completed")
			return
		}
		filter = s
	}

	elections, err := db.ListElections(h.db)
	if err != nil {
		slog.Error("failed to list elections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// A bad or stale token on a public listing just means no per-session fields
	sess, _ := lookupSession(h.sessions, r)

	now := h.now()
	views := make([]models.ElectionView, 0, len(elections))
	for _, e := range elections {
		v := BuildView(e, now)
		if filter != "" && v.Status != filter {
			continue
		}
		if sess != nil {
			annotate(&v, sess)
		}
		views = append(views, v)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListElectionsResponse{
		Elections: views,
		AsOf:      now,
	})
}

// GetElection handles GET /elections/{id}
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	e, ok := loadElection(w, r, h.db)
	if !ok {
		return
	}

	v := BuildView(e, h.now())
	if sess, err := lookupSession(h.sessions, r); err == nil {
		annotate(&v, sess)
	}

	middleware.JSONResponse(w, http.StatusOK, v)
}

// CreateElection handles POST /elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), h.cfg.AdminKey); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	ne := db.NewElection{
		Name:         strings.TrimSpace(req.Name),
		ElectionType: strings.TrimSpace(req.ElectionType),
		City:         strings.TrimSpace(req.City),
		Station:      strings.TrimSpace(req.Station),
		Description:  strings.TrimSpace(req.Description),
	}
	for _, name := range req.Candidates {
		if name = strings.TrimSpace(name); name != "" {
			ne.Candidates = append(ne.Candidates, name)
		}
	}

	if ne.Name == "" || ne.ElectionType == "" || ne.City == "" || ne.Station == "" ||
		ne.Description == "" || strings.TrimSpace(req.StartAt) == "" || strings.TrimSpace(req.EndAt) == "" ||
		len(ne.Candidates) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please fill all the fields.")
		return
	}

	var err error
	if ne.StartAt, err = parseInstant(req.StartAt); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "start_at must be a date (YYYY-MM-DD) or an RFC 3339 time")
		return
	}
	if ne.EndAt, err = parseInstant(req.EndAt); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "end_at must be a date (YYYY-MM-DD) or an RFC 3339 time")
		return
	}

	if ne.EndAt.Before(ne.StartAt) {
		// Accepted as entered; such an election is never Ongoing
		slog.Warn("election window ends before it starts",
			"name", ne.Name, "start_at", ne.StartAt, "end_at", ne.EndAt)
	}

	e, err := db.InsertElection(h.db, ne, h.now())
	if err != nil {
		slog.Error("failed to insert election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}

	slog.Info("election created", "election_id", e.ID, "name", e.Name, "candidates", len(e.Candidates))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		ElectionID: e.ID,
		Candidates: e.Candidates,
	})
}
