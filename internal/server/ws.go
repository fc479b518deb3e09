package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/tinsel/internal/scene"
)

// feedInterval paces snapshot broadcasts (~30 FPS).
const feedInterval = 33 * time.Millisecond

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local display front-end
	},
}

// SceneFeedHandler streams per-frame scene snapshots to the rendering
// front-end over WebSocket, and accepts viewer actions back (currently
// just "deselect", the explicit close of the zoomed photo viewer).
type SceneFeedHandler struct {
	scene   *scene.Scene
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewSceneFeedHandler creates a SceneFeedHandler for the given scene.
func NewSceneFeedHandler(sc *scene.Scene) *SceneFeedHandler {
	h := &SceneFeedHandler{
		scene:   sc,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// clientAction is an inbound message from the front-end.
type clientAction struct {
	Action string `json:"action"`
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *SceneFeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var action clientAction
		if err := json.Unmarshal(msg, &action); err != nil {
			continue
		}

		if action.Action == "deselect" {
			h.scene.Deselect()
		}
	}
}

// broadcast sends scene snapshots to all connected clients.
func (h *SceneFeedHandler) broadcast() {
	ticker := time.NewTicker(feedInterval)
	defer ticker.Stop()

	for range ticker.C {
		h.mu.RLock()
		idle := len(h.clients) == 0
		h.mu.RUnlock()
		if idle {
			continue
		}

		msg, err := json.Marshal(h.scene.Snapshot())
		if err != nil {
			continue
		}

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}
