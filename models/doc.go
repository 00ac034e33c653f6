// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateElectionRequest: name, election_type, city, station, start_at, end_at,
    description, candidates ([]string of names)
  - CreateSessionRequest: role
  - CastVoteRequest: candidate_id

# Response Types

Types for JSON responses:

  - CreateElectionResponse: election_id, candidates
  - ListElectionsResponse: elections, as_of
  - CreateSessionResponse: session_token, role, created_at
  - SessionInfoResponse: role, created_at, last_seen_at, votes
  - CastVoteResponse: election_id, candidate_id, message
  - ParticipationResponse: election_id, participating, message
  - ResultsResponse: election, results ([]CandidateResult), vote_count, as_of
  - ErrorResponse: error, message

# Domain Types

  - Election: election record with its ordered candidates
  - Candidate: candidate owned by one election
  - VoteRecord: one ballot entry (election_id → candidate_id)
  - ElectionView: an election rendered at an instant (status, labels, timing)

# Status Feed

StatusFeedMessage is pushed over the websocket feed:

	{"type": "statuses", "as_of": "...", "elections": [{"election_id": 1, "status": "Ongoing", "can_vote": true}]}
*/
package models
