package services

import (
	"encoding/json"
	"sync"

	"github.com/r-4-e/SwasthAI/models"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID string
	Conn   *websocket.Conn
}

// RealtimeHub fans daily-log updates out to a user's open dashboards so
// they refresh without polling.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// BroadcastLogUpdate pushes the updated daily aggregate to every open
// connection for the user. Best effort; write errors are ignored and the
// read loop handles cleanup.
func (h *RealtimeHub) BroadcastLogUpdate(userID string, log *models.DailyLog) {
	if h == nil || log == nil {
		return
	}
	msg, _ := json.Marshal(map[string]interface{}{
		"kind": "log.updated",
		"log":  log,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
