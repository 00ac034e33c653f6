// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session keeps the in-memory sessions that own ballots.

	store := session.NewStore(cfg.SessionTTL, time.Now)
	s := store.Create(session.RoleVoter)
	err := s.Ballot.CastVote(electionID, candidateID)

Sessions are never persisted. Ending a session, or leaving it idle longer
than the TTL, discards its ballot. RunReaper sweeps idle sessions in the
background until its context is cancelled.

Tally counts one election's choices across live sessions, so a tally only
reflects ballots that still exist.
*/
package session
