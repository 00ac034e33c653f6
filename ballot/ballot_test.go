// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
)

func TestCastVoteTwice(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
	}{
		{"different candidate", "Karthik", "Dileep"},
		{"same candidate", "Karthik", "Karthik"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()

			if err := b.CastVote(1, tt.first); err != nil {
				t.Fatalf("first CastVote() error = %v", err)
			}

			err := b.CastVote(1, tt.second)
			if !errors.Is(err, ErrAlreadyVoted) {
				t.Fatalf("second CastVote() error = %v, want %v", err, ErrAlreadyVoted)
			}

			got, ok := b.Choice(1)
			if !ok || got != tt.first {
				t.Errorf("Choice(1) = (%q, %v), want (%q, true)", got, ok, tt.first)
			}
		})
	}
}

func TestCastVoteIndependentElections(t *testing.T) {
	b := New()

	if err := b.CastVote(1, "Karthik"); err != nil {
		t.Fatalf("CastVote(1) error = %v", err)
	}
	if err := b.CastVote(2, "Dileep"); err != nil {
		t.Fatalf("CastVote(2) error = %v", err)
	}

	if got, _ := b.Choice(1); got != "Karthik" {
		t.Errorf("Choice(1) = %q, want Karthik", got)
	}
	if got, _ := b.Choice(2); got != "Dileep" {
		t.Errorf("Choice(2) = %q, want Dileep", got)
	}
}

func TestHasVoted(t *testing.T) {
	b := New()

	if b.HasVoted(3) {
		t.Error("HasVoted(3) = true before any vote")
	}
	if _, ok := b.Choice(3); ok {
		t.Error("Choice(3) reported a choice before any vote")
	}

	if err := b.CastVote(3, "Sriram"); err != nil {
		t.Fatalf("CastVote() error = %v", err)
	}

	if !b.HasVoted(3) {
		t.Error("HasVoted(3) = false after voting")
	}
	if b.HasVoted(4) {
		t.Error("HasVoted(4) = true, vote leaked to another election")
	}
}

func TestChoicesIsACopy(t *testing.T) {
	b := New()
	_ = b.CastVote(1, "Karthik")

	choices := b.Choices()
	choices[1] = "Dileep"
	choices[2] = "Sriram"

	if got, _ := b.Choice(1); got != "Karthik" {
		t.Errorf("Choice(1) = %q after mutating Choices() result", got)
	}
	if b.HasVoted(2) {
		t.Error("HasVoted(2) = true after mutating Choices() result")
	}
}

// TestConcurrentCastVote checks that exactly one of many racing votes wins
func TestConcurrentCastVote(t *testing.T) {
	b := New()

	const attempts = 50
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := b.CastVote(7, "candidate-"+strconv.Itoa(i))
			if err == nil {
				wins.Add(1)
			} else if !errors.Is(err, ErrAlreadyVoted) {
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Errorf("expected exactly 1 successful vote, got %d", wins.Load())
	}
}
