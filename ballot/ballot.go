// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"errors"
	"sync"
)

// ErrAlreadyVoted is returned when a choice is already recorded for the election.
// It is an expected outcome to show to the voter, not a fault.
var ErrAlreadyVoted = errors.New("already voted in this election")

// Ballot holds one session's choices, at most one per election.
// Recorded choices are never changed or removed.
type Ballot struct {
	mu      sync.Mutex
	choices map[int64]string // election_id -> candidate_id
}

func New() *Ballot {
	return &Ballot{choices: make(map[int64]string)}
}

// CastVote records candidateID for electionID.
// Whether the election currently accepts votes is the caller's concern.
func (b *Ballot) CastVote(electionID int64, candidateID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.choices[electionID]; ok {
		return ErrAlreadyVoted
	}
	b.choices[electionID] = candidateID
	return nil
}

func (b *Ballot) HasVoted(electionID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.choices[electionID]
	return ok
}

// Choice returns the candidate chosen for electionID, if any
func (b *Ballot) Choice(electionID int64) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	candidateID, ok := b.choices[electionID]
	return candidateID, ok
}

// Choices returns a copy of every recorded choice
func (b *Ballot) Choices() map[int64]string {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[int64]string, len(b.choices))
	for electionID, candidateID := range b.choices {
		out[electionID] = candidateID
	}
	return out
}
