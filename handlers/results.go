// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"cmp"
	"database/sql"
	"net/http"
	"slices"

	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/session"
)

// ResultsHandler reports tallies over the ballots of live sessions
type ResultsHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *session.Store
	now      Clock
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config, sessions *session.Store, now Clock) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg, sessions: sessions, now: now}
}

// GetResults handles GET /elections/{id}/results
// Per-candidate counts are sealed until the election is Completed
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	e, ok := loadElection(w, r, h.db)
	if !ok {
		return
	}

	now := h.now()
	if e.Status(now) != election.StatusCompleted {
		middleware.ErrorResponse(w, http.StatusForbidden, "Results are hidden until the election is completed")
		return
	}

	counts := h.sessions.Tally(e.ID)
	results := make([]models.CandidateResult, 0, len(e.Candidates))
	total := 0
	for _, c := range e.Candidates {
		results = append(results, models.CandidateResult{
			CandidateID: c.ID,
			Name:        c.Name,
			Votes:       counts[c.ID],
		})
		total += counts[c.ID]
	}
	// Candidates are already in ballot order, so a stable sort keeps ties there
	slices.SortStableFunc(results, func(a, b models.CandidateResult) int {
		return cmp.Compare(b.Votes, a.Votes)
	})

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Election:  BuildView(e, now),
		Results:   results,
		VoteCount: total,
		AsOf:      now,
	})
}

// GetVoteCount handles GET /elections/{id}/vote-count
// Returns the number of votes cast (visible in every status)
func (h *ResultsHandler) GetVoteCount(w http.ResponseWriter, r *http.Request) {
	e, ok := loadElection(w, r, h.db)
	if !ok {
		return
	}

	count := 0
	for _, n := range h.sessions.Tally(e.ID) {
		count += n
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]int64{
		"election_id": e.ID,
		"vote_count":  int64(count),
	})
}
