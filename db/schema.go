// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case SQLite:
		schema = sqliteSchema
	case Postgres:
		schema = postgresSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- Elections
CREATE TABLE IF NOT EXISTS election (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    election_type TEXT NOT NULL,
    city TEXT NOT NULL,
    station TEXT NOT NULL,
    start_at TIMESTAMP NOT NULL,
    end_at TIMESTAMP NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_election_window ON election(start_at, end_at);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    election_id INTEGER NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    id TEXT NOT NULL,
    name TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (election_id, id)
);

CREATE INDEX IF NOT EXISTS idx_candidate_election_id ON candidate(election_id);
`

const postgresSchema = `
-- Elections
CREATE TABLE IF NOT EXISTS election (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    election_type TEXT NOT NULL,
    city TEXT NOT NULL,
    station TEXT NOT NULL,
    start_at TIMESTAMPTZ NOT NULL,
    end_at TIMESTAMPTZ NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_election_window ON election(start_at, end_at);

-- Candidates
CREATE TABLE IF NOT EXISTS candidate (
    election_id BIGINT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    id TEXT NOT NULL,
    name TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (election_id, id)
);

CREATE INDEX IF NOT EXISTS idx_candidate_election_id ON candidate(election_id);
`
