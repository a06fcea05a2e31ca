// Package ws pushes kiosk session snapshots to the UI over WebSocket
// (gorilla/websocket).
//
//	hub := ws.NewHub(clientURL)
//	go hub.Run(ctx)
//	r.Get("/ws", hub.ServeHTTP)
//	hub.Publish(session) // from the controller's OnChange hook
//
// A newly connected client first receives the latest session. Any message a
// client sends is handed to OnMessage; the kiosk treats it as a touch.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mmynk/drinko/pkg/api"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 64
)

// Client represents a single connected WebSocket client.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	// version is the last session version queued to this client.
	version uint64
}

type message struct {
	version uint64
	data    []byte
}

// readPump pumps messages from the WebSocket connection to the hub.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("ws: unexpected close", "error", err)
			}
			return
		}
		if c.hub.OnMessage != nil {
			c.hub.OnMessage(msg)
		}
	}
}

// writePump pumps messages from the hub to the WebSocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Hub maintains the connected clients and broadcasts sessions to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	upgrader   websocket.Upgrader

	mu     sync.Mutex
	latest *message

	// OnMessage is called for every inbound client message (optional).
	OnMessage func(data []byte)
	// OnClients is called with the client count when it changes (optional).
	OnClients func(n int)
}

// NewHub creates a hub accepting browser connections from allowedOrigin only.
// Requests without an Origin header (non-browser clients) are accepted.
// Call Run in a goroutine before serving.
func NewHub(allowedOrigin string) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
	}
}

// Run is the hub event loop. It returns when ctx is cancelled, closing every
// client connection.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for client := range h.clients {
			close(client.send)
			delete(h.clients, client)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.clients[client] = true
			if latest := h.latestSession(); latest != nil {
				client.send <- latest.data
				client.version = latest.version
			}
			h.clientsChanged()
			slog.Info("ws: client connected", "total", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.clientsChanged()
				slog.Info("ws: client disconnected", "total", len(h.clients))
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				if msg.version <= client.version {
					continue
				}
				select {
				case client.send <- msg.data:
					client.version = msg.version
				default:
					// Client is not keeping up; drop it.
					close(client.send)
					delete(h.clients, client)
					h.clientsChanged()
				}
			}
		}
	}
}

func (h *Hub) clientsChanged() {
	if h.OnClients != nil {
		h.OnClients(len(h.clients))
	}
}

func (h *Hub) latestSession() *message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// Publish broadcasts a session to every client. Sessions older than the last
// published version are dropped.
func (h *Hub) Publish(session api.Session) {
	data, err := json.Marshal(session)
	if err != nil {
		slog.Error("ws: failed to marshal session", "error", err)
		return
	}

	msg := &message{version: session.Version, data: data}

	h.mu.Lock()
	if h.latest != nil && msg.version <= h.latest.version {
		h.mu.Unlock()
		return
	}
	h.latest = msg
	h.mu.Unlock()

	select {
	case h.broadcast <- *msg:
	case <-h.done:
	}
}

// ServeHTTP upgrades the connection to a WebSocket and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("ws: upgrade failed", "error", err)
		return
	}

	client := &Client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}
	go client.writePump()
	go client.readPump()
}
