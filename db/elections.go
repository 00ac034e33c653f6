// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/ballot-box/models"
)

var ErrElectionNotFound = errors.New("election not found")

// NewElection is the input for InsertElection
type NewElection struct {
	Name         string
	ElectionType string
	City         string
	Station      string
	StartAt      time.Time
	EndAt        time.Time
	Description  string
	Candidates   []string // names, in ballot order
}

// CandidateID builds the id of the candidate at position (1-based) in an election.
// Election 1 gets candidates "101", "102", ...
func CandidateID(electionID int64, position int) string {
	return fmt.Sprintf("%d%02d", electionID, position)
}

// InsertElection stores an election and its candidates in one transaction
func InsertElection(db *sql.DB, e NewElection, createdAt time.Time) (models.Election, error) {
	tx, err := db.Begin()
	if err != nil {
		return models.Election{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	election, err := insertElection(tx, e, createdAt)
	if err != nil {
		return models.Election{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Election{}, fmt.Errorf("failed to commit election: %w", err)
	}
	return election, nil
}

func insertElection(tx *sql.Tx, e NewElection, createdAt time.Time) (models.Election, error) {
	var id int64
	err := tx.QueryRow(`
		INSERT INTO election (name, election_type, city, station, start_at, end_at, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, e.Name, e.ElectionType, e.City, e.Station, e.StartAt.UTC(), e.EndAt.UTC(), e.Description, createdAt.UTC()).Scan(&id)
	if err != nil {
		return models.Election{}, fmt.Errorf("failed to insert election: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(e.Candidates))
	for i, name := range e.Candidates {
		c := models.Candidate{
			ID:         CandidateID(id, i+1),
			ElectionID: id,
			Name:       name,
			Position:   i + 1,
		}
		_, err = tx.Exec(`
			INSERT INTO candidate (election_id, id, name, position)
			VALUES ($1, $2, $3, $4)
		`, c.ElectionID, c.ID, c.Name, c.Position)
		if err != nil {
			return models.Election{}, fmt.Errorf("failed to insert candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	return models.Election{
		ID:           id,
		Name:         e.Name,
		ElectionType: e.ElectionType,
		City:         e.City,
		Station:      e.Station,
		StartAt:      e.StartAt.UTC(),
		EndAt:        e.EndAt.UTC(),
		Description:  e.Description,
		CreatedAt:    createdAt.UTC(),
		Candidates:   candidates,
	}, nil
}

// GetElection loads one election with its candidates
func GetElection(db *sql.DB, id int64) (models.Election, error) {
	var e models.Election
	err := db.QueryRow(`
		SELECT id, name, election_type, city, station, start_at, end_at, description, created_at
		FROM election
		WHERE id = $1
	`, id).Scan(
		&e.ID, &e.Name, &e.ElectionType, &e.City, &e.Station,
		&e.StartAt, &e.EndAt, &e.Description, &e.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Election{}, ErrElectionNotFound
	}
	if err != nil {
		return models.Election{}, fmt.Errorf("failed to query election: %w", err)
	}
	normalize(&e)

	rows, err := db.Query(`
		SELECT id, election_id, name, position
		FROM candidate
		WHERE election_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return models.Election{}, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	e.Candidates = []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.ElectionID, &c.Name, &c.Position); err != nil {
			return models.Election{}, fmt.Errorf("failed to scan candidate: %w", err)
		}
		e.Candidates = append(e.Candidates, c)
	}
	if err := rows.Err(); err != nil {
		return models.Election{}, fmt.Errorf("failed to read candidates: %w", err)
	}

	return e, nil
}

// ListElections loads every election with its candidates, ordered by id
func ListElections(db *sql.DB) ([]models.Election, error) {
	rows, err := db.Query(`
		SELECT id, name, election_type, city, station, start_at, end_at, description, created_at
		FROM election
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query elections: %w", err)
	}
	defer rows.Close()

	elections := []models.Election{}
	index := make(map[int64]int)
	for rows.Next() {
		var e models.Election
		if err := rows.Scan(
			&e.ID, &e.Name, &e.ElectionType, &e.City, &e.Station,
			&e.StartAt, &e.EndAt, &e.Description, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		normalize(&e)
		e.Candidates = []models.Candidate{}
		index[e.ID] = len(elections)
		elections = append(elections, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read elections: %w", err)
	}
	rows.Close()

	// Single connection pools (sqlite) need the first result set closed
	// before the second query runs
	crows, err := db.Query(`
		SELECT id, election_id, name, position
		FROM candidate
		ORDER BY election_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer crows.Close()

	for crows.Next() {
		var c models.Candidate
		if err := crows.Scan(&c.ID, &c.ElectionID, &c.Name, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		if i, ok := index[c.ElectionID]; ok {
			elections[i].Candidates = append(elections[i].Candidates, c)
		}
	}
	if err := crows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}

	return elections, nil
}

// CountElections returns the number of stored elections
func CountElections(db *sql.DB) (int, error) {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM election`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count elections: %w", err)
	}
	return n, nil
}

func normalize(e *models.Election) {
	e.StartAt = e.StartAt.UTC()
	e.EndAt = e.EndAt.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
}
