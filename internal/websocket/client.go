package websocket

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096
)

var ErrClientDisconnected = errors.New("client disconnected")

// Upgrader promotes an authenticated HTTP request to a WebSocket connection.
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin filtering happens in the CORS middleware
		return true
	},
}

// ConnState tracks the lifecycle of a client connection.
type ConnState int32

const (
	StateOpen ConnState = iota
	StateClosing
	StateClosed
)

// Conn is the transport primitive a Client writes to. *websocket.Conn
// satisfies it; tests substitute an in-memory implementation.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
}

// Client is one live realtime connection for one authenticated user. The
// user identity is fixed at upgrade time; the channel set is replaced by
// each subscribe directive.
type Client struct {
	id       string
	userID   string
	conn     Conn
	registry *Registry
	send     chan []byte
	done     chan struct{}

	mu       sync.RWMutex
	channels map[string]bool

	state int32

	// onClose runs once after the client has been removed from the registry.
	onClose func(*Client)
}

func NewClient(registry *Registry, conn Conn, userID string) *Client {
	return &Client{
		id:       uuid.New().String(),
		userID:   userID,
		conn:     conn,
		registry: registry,
		send:     make(chan []byte, 256),
		done:     make(chan struct{}),
		channels: make(map[string]bool),
		state:    int32(StateOpen),
	}
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) UserID() string {
	return c.userID
}

// State reports the current lifecycle state.
func (c *Client) State() ConnState {
	return ConnState(atomic.LoadInt32(&c.state))
}

// IsOpen reports whether the client is eligible for delivery.
func (c *Client) IsOpen() bool {
	return c.State() == StateOpen
}

// SetChannels replaces the subscription set. A subscribe directive is a full
// replacement, not a union.
func (c *Client) SetChannels(channels []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels = make(map[string]bool, len(channels))
	for _, ch := range channels {
		c.channels[ch] = true
	}
}

// Channels returns a copy of the current subscription set.
func (c *Client) Channels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	channels := make([]string, 0, len(c.channels))
	for ch := range c.channels {
		channels = append(channels, ch)
	}
	return channels
}

// Subscribed reports whether the client listens on the given channel.
func (c *Client) Subscribed(eventType EventType) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channels[eventType.String()]
}

// Send queues serialized bytes for delivery. A full send buffer counts as a
// dead peer: the client is torn down and the error is reported to the caller,
// who isolates it from other recipients.
func (c *Client) Send(data []byte) error {
	if !c.IsOpen() {
		return ErrClientDisconnected
	}

	select {
	case c.send <- data:
		return nil
	default:
		slog.Warn("Send buffer full, closing client", "clientID", c.id, "userID", c.userID)
		c.markClosing()
		c.conn.Close()
		return ErrClientDisconnected
	}
}

func (c *Client) markClosing() {
	atomic.CompareAndSwapInt32(&c.state, int32(StateOpen), int32(StateClosing))
}

// shutdown marks the client closed and removes it from the registry exactly
// once. Close and error paths both land here, so a close following an error
// cannot evict a newer connection for the same user.
func (c *Client) shutdown() {
	prev := atomic.SwapInt32(&c.state, int32(StateClosed))
	if ConnState(prev) == StateClosed {
		return
	}

	close(c.done)

	removed := c.registry.Remove(c.userID, c)
	slog.Debug("Client shut down", "clientID", c.id, "userID", c.userID, "removed", removed)

	if c.onClose != nil {
		c.onClose(c)
	}

	if err := c.conn.Close(); err != nil {
		slog.Debug("Error closing connection", "clientID", c.id, "userID", c.userID, "error", err)
	}
}

// SetOnClose installs a callback that runs once after the client has been
// torn down and removed from the registry.
func (c *Client) SetOnClose(fn func(*Client)) {
	c.onClose = fn
}

// Close tears the client down from the server side.
func (c *Client) Close() {
	c.shutdown()
}

// handleInbound applies one client frame. Malformed payloads are logged and
// ignored; the connection stays open with its previous subscriptions.
func (c *Client) handleInbound(data []byte) {
	var directive SubscribeDirective
	if err := json.Unmarshal(data, &directive); err != nil {
		slog.Error("Malformed client message", "clientID", c.id, "userID", c.userID, "error", err)
		return
	}

	switch directive.Type {
	case DirectiveSubscribe:
		c.registry.ApplySubscribe(c.userID, directive.Channels)
		slog.Info("Client subscribed", "clientID", c.id, "userID", c.userID, "channels", directive.Channels)
	default:
		slog.Debug("Ignoring unknown directive", "clientID", c.id, "userID", c.userID, "type", directive.Type)
	}
}

func (c *Client) readPump() {
	defer c.shutdown()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("WebSocket error", "clientID", c.id, "userID", c.userID, "error", err)
			} else {
				slog.Debug("WebSocket connection closed", "clientID", c.id, "userID", c.userID, "error", err)
			}
			return
		}
		c.handleInbound(data)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.markClosing()
		c.conn.Close()
	}()

	for {
		select {
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				slog.Debug("Error writing message", "clientID", c.id, "userID", c.userID, "error", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				slog.Debug("Error sending ping", "clientID", c.id, "userID", c.userID, "error", err)
				return
			}

		case <-c.done:
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// Start launches the read and write pumps. The read pump owns teardown.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
