// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/handlers"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/session"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions *session.Store, now handlers.Clock) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(db, cfg, sessions, now)
	sessionHandler := handlers.NewSessionHandler(sessions)
	votingHandler := handlers.NewVotingHandler(db, cfg, sessions, now)
	resultsHandler := handlers.NewResultsHandler(db, cfg, sessions, now)
	feedHandler := handlers.NewFeedHandler(db, cfg, now)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Elections (public reads, admin create)
	mux.HandleFunc("GET /elections", middleware.WithLogging(electionHandler.ListElections))
	mux.HandleFunc("POST /elections", middleware.WithLogging(electionHandler.CreateElection))
	mux.HandleFunc("GET /elections/{id}", middleware.WithLogging(electionHandler.GetElection))
	mux.HandleFunc("GET /elections/stream", middleware.WithLogging(feedHandler.StreamStatuses))

	// Sessions
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("GET /sessions/me", middleware.WithLogging(sessionHandler.GetSession))
	mux.HandleFunc("DELETE /sessions/me", middleware.WithLogging(sessionHandler.EndSession))

	// Voting (session required)
	mux.HandleFunc("POST /elections/{id}/votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /elections/{id}/my-vote", middleware.WithLogging(votingHandler.GetMyVote))
	mux.HandleFunc("POST /elections/{id}/participation", middleware.WithLogging(votingHandler.Participate))

	// Results (sealed until the election is Completed)
	mux.HandleFunc("GET /elections/{id}/results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /elections/{id}/vote-count", middleware.WithLogging(resultsHandler.GetVoteCount))

	// Root endpoint, exact match only so unknown paths 404
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballot-box API v1"))
	})

	return mux
}
