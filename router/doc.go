// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ballot-box API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, sessions, time.Now)

# Endpoints

Health:

	GET /health
	GET /       - API banner, exact path only; unknown paths are 404

Elections:

	GET  /elections          - List elections, optional ?status=
	GET  /elections/{id}     - Election detail
	POST /elections          - Create election (requires X-Admin-Key)
	GET  /elections/stream   - Websocket status feed

Sessions:

	POST   /sessions    - Start an anonymous session
	GET    /sessions/me - Session info and votes
	DELETE /sessions/me - End the session

Voting (requires X-Session-Token):

	POST /elections/{id}/votes         - Cast a vote
	GET  /elections/{id}/my-vote       - This session's vote
	POST /elections/{id}/participation - Candidate participation

Results (public):

	GET /elections/{id}/results    - Per-candidate counts (Completed only)
	GET /elections/{id}/vote-count - Number of votes cast
*/
package router
