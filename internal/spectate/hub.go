// Package spectate broadcasts match narration to read-only websocket observers.
package spectate

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/udisondev/battlego/internal/game/event"
)

const writeTimeout = 5 * time.Second

// Hub fans events out to connected observers. It implements event.Notifier
// and never blocks the engine: an observer whose queue is full misses the event.
type Hub struct {
	queueSize int

	mu      sync.Mutex
	clients map[*client]struct{}
	recent  []event.Event // last queueSize events, oldest first

	dropped atomic.Uint64
}

type client struct {
	conn   *websocket.Conn
	remote string
	send   chan []byte
}

// NewHub creates a hub with a per-observer queue of queueSize events.
func NewHub(queueSize int) *Hub {
	return &Hub{
		queueSize: max(queueSize, 1),
		clients:   make(map[*client]struct{}),
	}
}

func (h *Hub) Notify(e event.Event) {
	msg, err := json.Marshal(e)
	if err != nil {
		slog.Error("encoding spectator event", "kind", e.Kind, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.recent = append(h.recent, e)
	if len(h.recent) > h.queueSize {
		h.recent = h.recent[len(h.recent)-h.queueSize:]
	}

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.dropped.Add(1)
			slog.Debug("spectator queue full, event dropped", "remote", c.remote, "kind", e.Kind)
		}
	}
}

// Clients returns the number of connected observers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many deliveries were skipped because of full queues.
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }

// Recent returns the last events, oldest first.
func (h *Hub) Recent() []event.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]event.Event, len(h.recent))
	copy(out, h.recent)
	return out
}

// Close disconnects every observer.
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if c.conn != nil {
			c.conn.Close()
		}
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	slog.Info("spectator connected", "remote", c.remote, "clients", len(h.clients))
}

// remove unregisters c and closes its queue. Notify sends under the same
// lock, so nothing is sent on a closed queue.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	slog.Info("spectator disconnected", "remote", c.remote, "clients", len(h.clients))
}

// serve owns conn until the observer goes away.
func (h *Hub) serve(conn *websocket.Conn) {
	c := &client{
		conn:   conn,
		remote: conn.RemoteAddr().String(),
		send:   make(chan []byte, h.queueSize),
	}
	h.add(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.writeLoop()
	}()

	c.readLoop()
	h.remove(c)
	<-done
	conn.Close()
}

// readLoop discards observer messages and returns when the connection fails.
func (c *client) readLoop() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writeLoop() {
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			slog.Debug("spectator write failed", "remote", c.remote, "error", err)
			c.conn.Close()
			// drain until remove closes the queue
			for range c.send {
			}
			return
		}
	}
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
}
