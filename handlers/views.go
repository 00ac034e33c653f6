// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"

	"github.com/danielhkuo/ballot-box/auth"
	"github.com/danielhkuo/ballot-box/db"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/session"
)

// Clock supplies the current instant. Handlers never read time.Now directly.
type Clock func() time.Time

// SessionHeader carries the session token on voter requests
const SessionHeader = "X-Session-Token"

var errNoSessionHeader = errors.New("session header missing")

// BuildView renders an election as the UI shows it at now
func BuildView(e models.Election, now time.Time) models.ElectionView {
	status := e.Status(now)

	candidates := e.Candidates
	if candidates == nil {
		candidates = []models.Candidate{}
	}

	return models.ElectionView{
		ID:             e.ID,
		Name:           e.Name,
		ElectionType:   e.ElectionType,
		City:           e.City,
		Station:        e.Station,
		Description:    e.Description,
		StartAt:        e.StartAt,
		EndAt:          e.EndAt,
		StartLabel:     DateLabel(e.StartAt),
		EndLabel:       DateLabel(e.EndAt),
		Status:         status,
		Timing:         timing(e, status, now),
		CanVote:        status.PermitsVoting(),
		CandidateCount: len(candidates),
		Candidates:     candidates,
	}
}

// DateLabel formats a date the way the election cards show it, e.g. "20 Nov 2025"
func DateLabel(t time.Time) string {
	return strftime.Format("%d %b %Y", t)
}

func timing(e models.Election, status election.Status, now time.Time) string {
	switch status {
	case election.StatusUpcoming:
		return "starts " + humanize.RelTime(e.StartAt, now, "ago", "from now")
	case election.StatusOngoing:
		return "ends " + humanize.RelTime(e.EndAt, now, "ago", "from now")
	default:
		return "ended " + humanize.RelTime(e.EndAt, now, "ago", "from now")
	}
}

// annotate fills the per-session fields of a view
func annotate(v *models.ElectionView, s *session.Session) {
	choice, voted := s.Ballot.Choice(v.ID)
	v.HasVoted = &voted
	if voted {
		v.MyVote = &choice
	}
	if s.Role == session.RoleCandidate {
		participating := s.Participating(v.ID)
		v.Participating = &participating
	}
}

// lookupSession resolves the X-Session-Token header
func lookupSession(store *session.Store, r *http.Request) (*session.Session, error) {
	raw := r.Header.Get(SessionHeader)
	if raw == "" {
		return nil, errNoSessionHeader
	}
	token, err := auth.ParseSessionToken(raw)
	if err != nil {
		return nil, err
	}
	return store.Get(token)
}

// loadElection resolves the {id} path value, writing the error response itself
func loadElection(w http.ResponseWriter, r *http.Request, conn *sql.DB) (models.Election, bool) {
	id, ok := parseElectionID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid election id")
		return models.Election{}, false
	}

	e, err := db.GetElection(conn, id)
	if errors.Is(err, db.ErrElectionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return models.Election{}, false
	}
	if err != nil {
		slog.Error("failed to get election", "election_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Election{}, false
	}

	return e, true
}

func parseElectionID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseInstant accepts a date (midnight UTC) or an RFC 3339 instant
func parseInstant(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, v)
}
