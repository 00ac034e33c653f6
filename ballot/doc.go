// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot enforces the one-vote-per-election rule for a single session.

	b := ballot.New()
	if err := b.CastVote(electionID, candidateID); errors.Is(err, ballot.ErrAlreadyVoted) {
		// show "You already voted in this election"
	}

A Ballot is safe for concurrent use. Choices are never overwritten or
retracted, and nothing is persisted: the ballot lives as long as the session
that owns it.
*/
package ballot
