// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/ballot-box/auth"
	"github.com/danielhkuo/ballot-box/ballot"
)

// Session roles
const (
	RoleVoter     = "voter"
	RoleCandidate = "candidate"
)

var ErrSessionNotFound = errors.New("session not found")

// Session owns one ballot and the set of elections a candidate joined.
// Nothing in a session outlives it.
type Session struct {
	Token     string
	Role      string
	CreatedAt time.Time
	Ballot    *ballot.Ballot

	mu            sync.Mutex
	lastSeen      time.Time
	participating map[int64]bool
}

// Participate records that the session takes part in electionID.
// Returns false if it was already recorded.
func (s *Session) Participate(electionID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.participating[electionID] {
		return false
	}
	s.participating[electionID] = true
	return true
}

func (s *Session) Participating(electionID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.participating[electionID]
}

// LastSeen returns when the session was last used
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// Store is the in-memory registry of live sessions
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
// A zero ttl disables expiry.
func NewStore(ttl time.Duration, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      now,
	}
}

// Create starts a new session with an empty ballot
func (st *Store) Create(role string) *Session {
	now := st.now()
	s := &Session{
		Token:         auth.GenerateSessionToken(),
		Role:          role,
		CreatedAt:     now,
		Ballot:        ballot.New(),
		lastSeen:      now,
		participating: make(map[int64]bool),
	}

	st.mu.Lock()
	st.sessions[s.Token] = s
	st.mu.Unlock()

	return s
}

// Get returns the live session for token and marks it as used
func (st *Store) Get(token string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[token]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := st.now()
	if st.expired(s, now) {
		st.End(token)
		return nil, ErrSessionNotFound
	}

	s.touch(now)
	return s, nil
}

// End discards the session and its ballot
func (st *Store) End(token string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if _, ok := st.sessions[token]; !ok {
		return ErrSessionNotFound
	}
	delete(st.sessions, token)
	return nil
}

// Len returns the number of live sessions
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Tally counts the choices live sessions made in electionID, by candidate id.
// Votes leave the tally when their session ends or expires.
func (st *Store) Tally(electionID int64) map[string]int {
	now := st.now()

	st.mu.RLock()
	defer st.mu.RUnlock()

	counts := make(map[string]int)
	for _, s := range st.sessions {
		if st.expired(s, now) {
			continue
		}
		if candidateID, ok := s.Ballot.Choice(electionID); ok {
			counts[candidateID]++
		}
	}
	return counts
}

// Reap removes expired sessions and returns how many were dropped
func (st *Store) Reap(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for token, s := range st.sessions {
		if st.expired(s, now) {
			delete(st.sessions, token)
			removed++
		}
	}
	return removed
}

// RunReaper calls Reap every interval until ctx is cancelled
func (st *Store) RunReaper(ctx context.Context, interval time.Duration) {
	if st.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Reap(st.now()); n > 0 {
				slog.Info("expired sessions removed", "count", n, "remaining", st.Len())
			}
		}
	}
}

func (st *Store) expired(s *Session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(s.LastSeen()) > st.ttl
}

// ValidRole reports whether role names a known session role
func ValidRole(role string) bool {
	switch role {
	case RoleVoter, RoleCandidate:
		return true
	}
	return false
}
