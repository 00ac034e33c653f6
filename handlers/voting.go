// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/ballot-box/ballot"
	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/session"
)

type VotingHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	sessions *session.Store
	now      Clock
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config, sessions *session.Store, now Clock) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg, sessions: sessions, now: now}
}

// CastVote handles POST /elections/{id}/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.sessions)
	if !ok {
		return
	}

	e, ok := loadElection(w, r, h.db)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}
	candidateID := strings.TrimSpace(req.CandidateID)
	if candidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	// Status is resolved at request time, never stored
	status := e.Status(h.now())
	if !status.PermitsVoting() {
		middleware.ErrorResponse(w, http.StatusConflict, "Voting is closed for this election")
		return
	}

	candidate, found := e.Candidate(candidateID)
	if !found {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Candidate is not running in this election")
		return
	}

	if err := s.Ballot.CastVote(e.ID, candidate.ID); err != nil {
		if errors.Is(err, ballot.ErrAlreadyVoted) {
			middleware.ErrorResponse(w, http.StatusConflict, "You already voted in this election")
			return
		}
		slog.Error("failed to record vote", "election_id", e.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote cast", "election_id", e.ID, "status", status, "role", s.Role)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		ElectionID:  e.ID,
		CandidateID: candidate.ID,
		Message:     fmt.Sprintf("You voted for %q in %q.", candidate.Name, e.Name),
	})
}

// GetMyVote handles GET /elections/{id}/my-vote
func (h *VotingHandler) GetMyVote(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.sessions)
	if !ok {
		return
	}

	id, ok := parseElectionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid election id")
		return
	}

	candidateID, voted := s.Ballot.Choice(id)
	if !voted {
		middleware.ErrorResponse(w, http.StatusNotFound, "No vote recorded for this election")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteRecord{
		ElectionID:  id,
		CandidateID: candidateID,
	})
}

// Participate handles POST /elections/{id}/participation
func (h *VotingHandler) Participate(w http.ResponseWriter, r *http.Request) {
	s, ok := requireSession(w, r, h.sessions)
	if !ok {
		return
	}

	if s.Role != session.RoleCandidate {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only candidate sessions can participate")
		return
	}

	e, ok := loadElection(w, r, h.db)
	if !ok {
		return
	}

	message := fmt.Sprintf("You are participating in %q election.", e.Name)
	if !s.Participate(e.ID) {
		message = fmt.Sprintf("You are already participating in %q election.", e.Name)
	} else {
		slog.Info("candidate participating", "election_id", e.ID)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipationResponse{
		ElectionID:    e.ID,
		Participating: true,
		Message:       message,
	})
}
