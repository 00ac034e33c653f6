// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/testutil"
)

func dialFeed(t *testing.T, env *testEnv) *websocket.Conn {
	t.Helper()

	handler := NewFeedHandler(env.db, env.cfg, env.clock.Now)
	server := httptest.NewServer(http.HandlerFunc(handler.StreamStatuses))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial status feed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func readStatuses(t *testing.T, conn *websocket.Conn) models.StatusFeedMessage {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg models.StatusFeedMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("Failed to read status message: %v", err)
	}
	if msg.Type != models.FeedMessageStatuses {
		t.Fatalf("Expected %q message, got %q", models.FeedMessageStatuses, msg.Type)
	}
	return msg
}

func TestStatusFeed(t *testing.T) {
	env := newTestEnv(t, "2025-11-25")
	testutil.CreateTestElection(t, env.db, "City Council", "2025-11-20", "2025-11-28")
	testutil.CreateTestElection(t, env.db, "State Assembly", "2025-12-05", "2025-12-10")

	conn := dialFeed(t, env)

	msg := readStatuses(t, conn)
	if len(msg.Elections) != 2 {
		t.Fatalf("Expected 2 elections, got %d", len(msg.Elections))
	}
	if msg.Elections[0].Status != election.StatusOngoing || !msg.Elections[0].CanVote {
		t.Errorf("Election 1: %+v, want Ongoing and votable", msg.Elections[0])
	}
	if msg.Elections[1].Status != election.StatusUpcoming {
		t.Errorf("Election 2: %s, want Upcoming", msg.Elections[1].Status)
	}

	// Moving past the first window pushes a new snapshot
	env.clock.Set(testutil.Day("2025-12-01"))

	msg = readStatuses(t, conn)
	if msg.Elections[0].Status != election.StatusCompleted || msg.Elections[0].CanVote {
		t.Errorf("Election 1: %+v, want Completed and closed", msg.Elections[0])
	}
	if !msg.AsOf.Equal(testutil.Day("2025-12-01")) {
		t.Errorf("as_of = %v, want 2025-12-01", msg.AsOf)
	}

	// A new election changes the snapshot too
	testutil.CreateTestElection(t, env.db, "Mayor", "2025-12-08", "2025-12-15")

	msg = readStatuses(t, conn)
	if len(msg.Elections) != 3 {
		t.Errorf("Expected 3 elections after insert, got %d", len(msg.Elections))
	}
}

func TestStatusFeedQuietWithoutChanges(t *testing.T) {
	env := newTestEnv(t, "2025-11-25")
	testutil.CreateTestElection(t, env.db, "City Council", "2025-11-20", "2025-11-28")

	conn := dialFeed(t, env)
	readStatuses(t, conn)

	// Several feed intervals pass with the clock frozen
	conn.SetReadDeadline(time.Now().Add(20 * env.cfg.FeedInterval))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("Expected no message while statuses are unchanged")
	}
}

func TestStatusFeedRequiresUpgrade(t *testing.T) {
	env := newTestEnv(t, "2025-11-25")
	handler := NewFeedHandler(env.db, env.cfg, env.clock.Now)

	req := httptest.NewRequest("GET", "/elections/stream", nil)
	w := httptest.NewRecorder()
	handler.StreamStatuses(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
