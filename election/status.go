// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"strings"
	"time"
)

// Status is the lifecycle state of an election at a given instant.
// It is always derived from the election window and never stored.
type Status string

const (
	StatusUpcoming  Status = "Upcoming"
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
)

// Resolve maps an election window and the current instant to a Status.
// Both ends of the window are inclusive. The window is not validated:
// an end before the start yields Upcoming or Completed, never Ongoing.
func Resolve(start, end, now time.Time) Status {
	if now.Before(start) {
		return StatusUpcoming
	}
	if now.After(end) {
		return StatusCompleted
	}
	return StatusOngoing
}

// PermitsVoting reports whether ballots may be cast in this state
func (s Status) PermitsVoting() bool {
	return s != StatusCompleted
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus accepts a status name in any letter case
func ParseStatus(v string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "upcoming":
		return StatusUpcoming, true
	case "ongoing":
		return StatusOngoing, true
	case "completed":
		return StatusCompleted, true
	}
	return "", false
}
