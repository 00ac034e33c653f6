// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election derives the lifecycle status of an election.

# Status Resolution

	status := election.Resolve(startAt, endAt, now)

The window is inclusive on both ends:

	now <  start         → Upcoming
	start <= now <= end  → Ongoing
	now >  end           → Completed

Callers always pass now explicitly; nothing in this package reads the
system clock.

# Voting Window

Ballots may be cast while an election is Upcoming or Ongoing:

	if !status.PermitsVoting() {
		// reject
	}
*/
package election
