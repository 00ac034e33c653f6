// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and reads and writes
elections.

# Drivers

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - sqlite: modernc.org/sqlite, file path or ":memory:", single connection
  - postgres: github.com/lib/pq

# Schema Creation

CreateSchema initializes all required tables for the chosen dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - election: election metadata and its voting window

  - candidate: ordered candidates per election

    election 1──* candidate

Candidates cascade on election delete. Candidate ids are only unique within
their election; CandidateID(1, 2) is "102".

# Seed Data

Seed inserts the three default elections (embedded seed/elections.json) into
an empty database and does nothing otherwise.

# Ballots

Ballots are deliberately absent: votes live in memory with their session and
are never written here.
*/
package db
