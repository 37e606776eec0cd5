package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// RefreshEvent tells a client that data it may be showing changed and
// should be refetched. Delivery is best effort; a racing reader may
// still see stale totals until it re-queries.
type RefreshEvent struct {
	Kind  string `json:"kind"`
	Scope string `json:"scope"`
}

// Refresher is what the mutating services publish to. The hub satisfies
// it; tests substitute their own.
type Refresher interface {
	NotifyDataChanged(userID uint, scope string)
}

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RefreshHub fans refresh events out to every open connection of a user.
type RefreshHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRefreshHub() *RefreshHub {
	return &RefreshHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RefreshHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RefreshHub) Unregister(c *WSClient) {
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

func (h *RefreshHub) NotifyDataChanged(userID uint, scope string) {
	msg, _ := json.Marshal(RefreshEvent{Kind: "data.changed", Scope: scope})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
