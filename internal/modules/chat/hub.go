package chat

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 50 * time.Second
	sendBuffer = 64
)

// connection owns all writes to one websocket. Messages are queued on the
// send channel and written by a single writePump goroutine; gorilla/websocket
// allows at most one concurrent writer per connection.
type connection struct {
	actorID int64
	ws      *websocket.Conn
	send    chan []byte

	closeOnce sync.Once
}

func (c *connection) close() {
	c.closeOnce.Do(func() { close(c.send) })
}

func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Hub tracks the single live websocket connection per actor. Delivery is
// best-effort; a slow receiver loses messages rather than blocking senders.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]*connection
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*connection),
	}
}

// Register replaces any previous connection for the actor and starts the
// write pump for the new one.
func (h *Hub) Register(actorID int64, ws *websocket.Conn) {
	c := &connection{
		actorID: actorID,
		ws:      ws,
		send:    make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	if old, exists := h.connections[actorID]; exists && old != nil {
		old.close()
	}
	h.connections[actorID] = c
	h.mu.Unlock()

	go c.writePump()
}

// Unregister drops the actor's connection when ws is still the live one.
// A stale socket whose read loop ended after a reconnect is left alone.
func (h *Hub) Unregister(actorID int64, ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, exists := h.connections[actorID]; exists && c.ws == ws {
		c.close()
		delete(h.connections, actorID)
	}
}

// SendToActor queues the message for the actor's connection. False when the
// actor is offline or the connection cannot keep up.
func (h *Hub) SendToActor(actorID int64, message any) bool {
	data, err := json.Marshal(message)
	if err != nil {
		return false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	c, exists := h.connections[actorID]
	if !exists || c == nil {
		return false
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (h *Hub) IsOnline(actorID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, exists := h.connections[actorID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for actorID, c := range h.connections {
		c.close()
		delete(h.connections, actorID)
	}
}
