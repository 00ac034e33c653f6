// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/session"
	"github.com/danielhkuo/ballot-box/testutil"
)

func TestGetResults(t *testing.T) {
	env := newTestEnv(t, "2025-11-25")
	handler := NewResultsHandler(env.db, env.cfg, env.sessions, env.clock.Now)
	e := testutil.CreateTestElection(t, env.db, "City Council", "2025-11-20", "2025-11-28")

	votes := []string{"102", "103", "102", "101", "103"}
	for _, candidateID := range votes {
		s := env.sessions.Create(session.RoleVoter)
		if err := s.Ballot.CastVote(e.ID, candidateID); err != nil {
			t.Fatalf("CastVote() error = %v", err)
		}
	}

	get := func() *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/elections/1/results", nil, nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		handler.GetResults(w, req)
		return w
	}

	// Sealed while Ongoing
	testutil.AssertStatus(t, get(), http.StatusForbidden)

	env.clock.Set(testutil.Day("2025-11-29"))
	w := get()
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.VoteCount != len(votes) {
		t.Errorf("Expected vote_count %d, got %d", len(votes), resp.VoteCount)
	}
	if resp.Election.CanVote {
		t.Error("Completed election reported as votable")
	}

	// 102 and 103 tie on 2 votes; ballot order breaks the tie
	want := []struct {
		id    string
		votes int
	}{{"102", 2}, {"103", 2}, {"101", 1}}
	if len(resp.Results) != len(want) {
		t.Fatalf("Expected %d results, got %d", len(want), len(resp.Results))
	}
	for i, w := range want {
		if resp.Results[i].CandidateID != w.id || resp.Results[i].Votes != w.votes {
			t.Errorf("Result %d = %+v, want %s with %d", i, resp.Results[i], w.id, w.votes)
		}
	}
}

func TestGetResultsNotFound(t *testing.T) {
	env := newTestEnv(t, "2025-12-01")
	handler := NewResultsHandler(env.db, env.cfg, env.sessions, env.clock.Now)

	req := testutil.MakeRequest("GET", "/elections/5/results", nil, nil)
	req.SetPathValue("id", "5")
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestGetVoteCount(t *testing.T) {
	env := newTestEnv(t, "2025-11-15")
	handler := NewResultsHandler(env.db, env.cfg, env.sessions, env.clock.Now)
	e := testutil.CreateTestElection(t, env.db, "City Council", "2025-11-20", "2025-11-28")

	count := func() int64 {
		req := testutil.MakeRequest("GET", "/elections/1/vote-count", nil, nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		handler.GetVoteCount(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp map[string]int64
		testutil.AssertJSON(t, w, &resp)
		return resp["vote_count"]
	}

	if n := count(); n != 0 {
		t.Errorf("Expected 0 votes, got %d", n)
	}

	a := env.sessions.Create(session.RoleVoter)
	b := env.sessions.Create(session.RoleVoter)
	_ = a.Ballot.CastVote(e.ID, "101")
	_ = b.Ballot.CastVote(e.ID, "102")

	if n := count(); n != 2 {
		t.Errorf("Expected 2 votes, got %d", n)
	}

	// Ending a session discards its vote
	_ = env.sessions.End(a.Token)
	if n := count(); n != 1 {
		t.Errorf("Expected 1 vote after session end, got %d", n)
	}
}
