// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"
)

//go:embed seed/elections.json
var seedElections []byte

type seedElection struct {
	Name         string    `json:"name"`
	ElectionType string    `json:"election_type"`
	City         string    `json:"city"`
	Station      string    `json:"station"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
	Description  string    `json:"description"`
	Candidates   []string  `json:"candidates"`
}

// Seed inserts the default elections when the election table is empty.
// All seeds go in one transaction. Returns how many elections were inserted.
func Seed(db *sql.DB, now time.Time) (int, error) {
	n, err := CountElections(db)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	var seeds []seedElection
	if err := json.Unmarshal(seedElections, &seeds); err != nil {
		return 0, fmt.Errorf("failed to parse seed elections: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, s := range seeds {
		_, err := insertElection(tx, NewElection{
			Name:         s.Name,
			ElectionType: s.ElectionType,
			City:         s.City,
			Station:      s.Station,
			StartAt:      s.StartAt,
			EndAt:        s.EndAt,
			Description:  s.Description,
			Candidates:   s.Candidates,
		}, now)
		if err != nil {
			return 0, fmt.Errorf("failed to seed %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed elections: %w", err)
	}

	return len(seeds), nil
}
