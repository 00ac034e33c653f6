// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ballot-box API.

# Handler Types

Each handler is a struct holding the dependencies it needs:

  - ElectionHandler: election listing, detail and admin creation
  - SessionHandler: anonymous session lifecycle
  - VotingHandler: vote casting, vote lookup and candidate participation
  - ResultsHandler: tallies over live sessions' ballots
  - FeedHandler: websocket status feed

Handlers that resolve election status take a Clock so tests can pin the
current instant:

	electionHandler := handlers.NewElectionHandler(db, cfg, sessions, time.Now)

# Election Status

Status is never stored. Every response resolves it from the election's
window at request time:

	GET /elections?status=Ongoing → ListElections
	GET /elections/{id}           → GetElection
	POST /elections               → CreateElection (X-Admin-Key)

Upcoming and Ongoing elections accept votes. Completed ones do not.

# Sessions and Votes

A session is an anonymous handle owning one ballot. Ending it discards
every choice it made.

	POST /sessions                      → CreateSession (returns session_token)
	POST /elections/{id}/votes          → CastVote
	GET /elections/{id}/my-vote         → GetMyVote
	POST /elections/{id}/participation  → Participate (candidate sessions)

Session operations require the X-Session-Token header. A second vote in the
same election returns 409 with "You already voted in this election".

# Results

Votes live only as long as their session, so tallies count the ballots of
live sessions. Per-candidate results stay sealed until the election is
Completed; the plain vote count is public in every status.

	GET /elections/{id}/results    → GetResults
	GET /elections/{id}/vote-count → GetVoteCount

# Status Feed

	GET /elections/stream → StreamStatuses

Sends a "statuses" message on connect and again whenever any election's
status changes.
*/
package handlers
