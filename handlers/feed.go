// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/ballot-box/cliparse"
	"github.com/danielhkuo/ballot-box/db"
	"github.com/danielhkuo/ballot-box/election"
	"github.com/danielhkuo/ballot-box/middleware"
	"github.com/danielhkuo/ballot-box/models"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Clients only send control frames
	maxMessageSize = 512
)

// FeedHandler pushes election statuses over a websocket as they change
type FeedHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	now      Clock
	upgrader websocket.Upgrader
}

func NewFeedHandler(db *sql.DB, cfg cliparse.Config, now Clock) *FeedHandler {
	return &FeedHandler{
		db:  db,
		cfg: cfg,
		now: now,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The feed is public, read-only data
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// StreamStatuses handles GET /elections/stream
func (h *FeedHandler) StreamStatuses(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	clientIP := middleware.GetClientIP(r)
	slog.Info("status feed connected", "client_ip", clientIP)

	done := make(chan struct{})
	go h.readPump(conn, done)

	ticker := time.NewTicker(h.cfg.FeedInterval)
	defer ticker.Stop()
	pinger := time.NewTicker(pingPeriod)
	defer pinger.Stop()

	var last map[int64]election.Status
	send := func() bool {
		msg, current, err := h.snapshot()
		if err != nil {
			// Try again on the next tick
			slog.Error("failed to load election statuses", "error", err)
			return true
		}
		if last != nil && maps.Equal(last, current) {
			return true
		}
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			slog.Debug("status feed write failed", "error", err)
			return false
		}
		last = current
		return true
	}

	if !send() {
		return
	}

	for {
		select {
		case <-done:
			slog.Info("status feed disconnected", "client_ip", clientIP)
			return
		case <-ticker.C:
			if !send() {
				return
			}
		case <-pinger.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump keeps pong handling alive and closes done when the peer goes away
func (h *FeedHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("status feed read error", "error", err)
			}
			return
		}
	}
}

// snapshot resolves every election's status at the current instant
func (h *FeedHandler) snapshot() (models.StatusFeedMessage, map[int64]election.Status, error) {
	elections, err := db.ListElections(h.db)
	if err != nil {
		return models.StatusFeedMessage{}, nil, err
	}

	now := h.now()
	msg := models.StatusFeedMessage{
		Type:      models.FeedMessageStatuses,
		AsOf:      now,
		Elections: make([]models.StatusEntry, 0, len(elections)),
	}
	statuses := make(map[int64]election.Status, len(elections))
	for _, e := range elections {
		s := e.Status(now)
		statuses[e.ID] = s
		msg.Elections = append(msg.Elections, models.StatusEntry{
			ElectionID: e.ID,
			Status:     s,
			CanVote:    s.PermitsVoting(),
		})
	}

	return msg, statuses, nil
}
