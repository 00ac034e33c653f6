// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/danielhkuo/ballot-box/election"
)

// Request types

// StartAt and EndAt accept either a date (2025-11-20) or an RFC 3339 instant
type CreateElectionRequest struct {
	Name         string   `json:"name"`
	ElectionType string   `json:"election_type"`
	City         string   `json:"city"`
	Station      string   `json:"station"`
	StartAt      string   `json:"start_at"`
	EndAt        string   `json:"end_at"`
	Description  string   `json:"description"`
	Candidates   []string `json:"candidates"`
}

type CreateSessionRequest struct {
	Role string `json:"role"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

// Response types

type CreateElectionResponse struct {
	ElectionID int64       `json:"election_id"`
	Candidates []Candidate `json:"candidates"`
}

type ListElectionsResponse struct {
	Elections []ElectionView `json:"elections"`
	AsOf      time.Time      `json:"as_of"`
}

type CreateSessionResponse struct {
	SessionToken string    `json:"session_token"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type SessionInfoResponse struct {
	Role       string       `json:"role"`
	CreatedAt  time.Time    `json:"created_at"`
	LastSeenAt time.Time    `json:"last_seen_at"`
	Votes      []VoteRecord `json:"votes"`
}

type CastVoteResponse struct {
	ElectionID  int64  `json:"election_id"`
	CandidateID string `json:"candidate_id"`
	Message     string `json:"message"`
}

type ParticipationResponse struct {
	ElectionID    int64  `json:"election_id"`
	Participating bool   `json:"participating"`
	Message       string `json:"message"`
}

type CandidateResult struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Votes       int    `json:"votes"`
}

type ResultsResponse struct {
	Election  ElectionView      `json:"election"`
	Results   []CandidateResult `json:"results"` // most votes first, ties in ballot order
	VoteCount int               `json:"vote_count"`
	AsOf      time.Time         `json:"as_of"`
}

// Domain types

type Election struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	ElectionType string      `json:"election_type"`
	City         string      `json:"city"`
	Station      string      `json:"station"`
	StartAt      time.Time   `json:"start_at"`
	EndAt        time.Time   `json:"end_at"`
	Description  string      `json:"description"`
	CreatedAt    time.Time   `json:"created_at"`
	Candidates   []Candidate `json:"candidates"`
}

// Status derives the election's lifecycle state at now
func (e Election) Status(now time.Time) election.Status {
	return election.Resolve(e.StartAt, e.EndAt, now)
}

// Candidate finds one of this election's candidates by id
func (e Election) Candidate(candidateID string) (Candidate, bool) {
	for _, c := range e.Candidates {
		if c.ID == candidateID {
			return c, true
		}
	}
	return Candidate{}, false
}

type Candidate struct {
	ID         string `json:"id"`
	ElectionID int64  `json:"election_id"`
	Name       string `json:"name"`
	Position   int    `json:"position"`
}

type VoteRecord struct {
	ElectionID  int64  `json:"election_id"`
	CandidateID string `json:"candidate_id"`
}

// ElectionView is an election as the UI renders it at a given instant
type ElectionView struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	ElectionType   string          `json:"election_type"`
	City           string          `json:"city"`
	Station        string          `json:"station"`
	Description    string          `json:"description"`
	StartAt        time.Time       `json:"start_at"`
	EndAt          time.Time       `json:"end_at"`
	StartLabel     string          `json:"start_label"` // e.g. "20 Nov 2025"
	EndLabel       string          `json:"end_label"`
	Status         election.Status `json:"status"`
	Timing         string          `json:"timing"` // e.g. "ends 3 days from now"
	CanVote        bool            `json:"can_vote"`
	CandidateCount int             `json:"candidate_count"`
	Candidates     []Candidate     `json:"candidates,omitempty"`

	// Set only when the request carries a live session
	HasVoted      *bool   `json:"has_voted,omitempty"`
	MyVote        *string `json:"my_vote,omitempty"`
	Participating *bool   `json:"participating,omitempty"`
}

// Status feed messages

const FeedMessageStatuses = "statuses"

type StatusEntry struct {
	ElectionID int64           `json:"election_id"`
	Status     election.Status `json:"status"`
	CanVote    bool            `json:"can_vote"`
}

type StatusFeedMessage struct {
	Type      string        `json:"type"`
	AsOf      time.Time     `json:"as_of"`
	Elections []StatusEntry `json:"elections"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
