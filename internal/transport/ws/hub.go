// Package ws pushes domain events to websocket subscribers.
//
// Clients send {"action":"subscribe","topic":"delivery.{id}.status"} and
// receive {"topic":...,"payload":...} frames for every event on that topic.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"service-dispatch/internal/http/middleware/auth"
	"service-dispatch/internal/logx"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Frame is an outgoing event.
type Frame struct {
	Topic   string `json:"topic"`
	Payload any    `json:"payload"`
}

type command struct {
	Action string `json:"action"`
	Topic  string `json:"topic"`
}

type reply struct {
	Type    string `json:"type"`
	Topic   string `json:"topic,omitempty"`
	Message string `json:"message,omitempty"`
}

// Hub tracks subscriptions and implements the event notifier.
type Hub struct {
	mu       sync.RWMutex
	topics   map[string]map[*client]struct{}
	clients  map[*client]struct{}
	guard    DeliveryGuard
	logger   logx.Logger
	upgrader websocket.Upgrader
}

// NewHub creates a Hub. guard may be nil.
func NewHub(guard DeliveryGuard, logger logx.Logger) *Hub {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Hub{
		topics:  make(map[string]map[*client]struct{}),
		clients: make(map[*client]struct{}),
		guard:   guard,
		logger:  logger.With(logx.String("component", "ws")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Publish delivers the event to current subscribers. A subscriber whose
// buffer is full misses the event.
func (h *Hub) Publish(_ context.Context, topic string, payload any) error {
	h.mu.RLock()
	subs := make([]*client, 0, len(h.topics[topic]))
	for c := range h.topics[topic] {
		subs = append(subs, c)
	}
	h.mu.RUnlock()
	if len(subs) == 0 {
		return nil
	}

	msg, err := json.Marshal(Frame{Topic: topic, Payload: payload})
	if err != nil {
		return err
	}
	for _, c := range subs {
		if !c.enqueue(msg) {
			h.logger.Warn("ws subscriber too slow, event dropped",
				logx.String("topic", topic),
				logx.ID("user_id", c.who.UserID),
			)
		}
	}
	return nil
}

// Subscribers returns the number of clients on topic.
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}

// Close sends a close frame to every connected client.
func (h *Hub) Close() {
	h.mu.RLock()
	all := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		all = append(all, c)
	}
	h.mu.RUnlock()
	for _, c := range all {
		c.close()
	}
}

// ServeHTTP upgrades an authenticated request.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	who, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the response
		h.logger.Warn("ws upgrade failed", logx.Err(err))
		return
	}

	c := &client{
		who:    who,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		topics: make(map[string]struct{}),
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("ws connected", logx.ID("user_id", who.UserID))

	// the upgrade hijacks the connection, so the request context is detached from it
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	go c.writePump()
	go func() {
		defer cancel()
		h.readPump(ctx, c)
	}()
}

func (h *Hub) subscribe(c *client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.topics[topic]
	if !ok {
		set = make(map[*client]struct{})
		h.topics[topic] = set
	}
	set[c] = struct{}{}
	c.topics[topic] = struct{}{}
}

func (h *Hub) unsubscribe(c *client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.detach(c, topic)
}

func (h *Hub) detach(c *client, topic string) {
	if set, ok := h.topics[topic]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.topics, topic)
		}
	}
	delete(c.topics, topic)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	for topic := range c.topics {
		h.detach(c, topic)
	}
	delete(h.clients, c)
	h.mu.Unlock()
	c.close()
	h.logger.Info("ws disconnected", logx.ID("user_id", c.who.UserID))
}

func (h *Hub) readPump(ctx context.Context, c *client) {
	defer h.remove(c)

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("ws read failed", logx.Err(err))
			}
			return
		}
		h.handle(ctx, c, cmd)
	}
}

func (h *Hub) handle(ctx context.Context, c *client, cmd command) {
	switch cmd.Action {
	case "subscribe":
		if err := authorize(ctx, c.who, cmd.Topic, h.guard); err != nil {
			c.reply(reply{Type: "error", Topic: cmd.Topic, Message: err.Error()})
			return
		}
		h.subscribe(c, cmd.Topic)
		c.reply(reply{Type: "subscribed", Topic: cmd.Topic})
	case "unsubscribe":
		h.unsubscribe(c, cmd.Topic)
		c.reply(reply{Type: "unsubscribed", Topic: cmd.Topic})
	default:
		c.reply(reply{Type: "error", Message: "unknown action"})
	}
}

type client struct {
	who    auth.Identity
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	once   sync.Once
	topics map[string]struct{} // guarded by Hub.mu
}

func (c *client) enqueue(msg []byte) bool {
	select {
	case <-c.done:
		return true
	default:
	}
	select {
	case c.send <- msg:
		return true
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *client) reply(r reply) {
	msg, err := json.Marshal(r)
	if err != nil {
		return
	}
	c.enqueue(msg)
}

func (c *client) close() {
	c.once.Do(func() { close(c.done) })
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}
