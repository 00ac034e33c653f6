// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballot-box API server.

ballot-box lists scheduled elections, resolves each one's status
(Upcoming, Ongoing or Completed) from its window at request time, and lets
an anonymous session cast at most one vote per election.

# Starting the Server

The server needs an admin key. Everything else has a default:

	ADMIN_KEY=secret go run .

Or with flags, against PostgreSQL:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-key secret

Settings may also come from a .env file (-env, default ".env"). Flags win
over the environment, which wins over the file.

# Configuration

Required settings:

  - ADMIN_KEY (-admin-key): Key for creating elections

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: ballot-box.db for sqlite)
  - SESSION_TTL (-session-ttl): Idle time before a session is dropped (default: 2h)
  - FEED_INTERVAL (-feed-interval): Status feed recheck period (default: 30s)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)
  - LOG_FORMAT (-log-format): text, json or auto (default: auto)
  - SEED_ELECTIONS (-no-seed): Insert the default elections into an empty database

# Architecture

  - election: Status resolution from an election window
  - ballot: One-vote-per-election ballot for a session
  - session: In-memory anonymous sessions with idle expiry
  - handlers: HTTP request handlers (elections, sessions, voting, feed)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Session tokens and admin key checks
  - db: Connection, schema, queries and seed data
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
