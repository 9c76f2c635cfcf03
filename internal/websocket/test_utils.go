package websocket

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// errConnClosed is returned by mockConn once closed.
var errConnClosed = errors.New("connection closed")

// mockConn implements the Conn interface for testing. Reads block until a
// frame is queued with queueInbound or the connection is closed.
type mockConn struct {
	mu       sync.Mutex
	messages [][]byte
	writeErr error
	closed   bool

	inbound chan []byte
	done    chan struct{}
}

func newMockConn() *mockConn {
	return &mockConn{
		inbound: make(chan []byte, 16),
		done:    make(chan struct{}),
	}
}

func (m *mockConn) ReadMessage() (int, []byte, error) {
	select {
	case data := <-m.inbound:
		return websocket.TextMessage, data, nil
	case <-m.done:
		return 0, nil, errConnClosed
	}
}

func (m *mockConn) WriteMessage(messageType int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errConnClosed
	}
	if m.writeErr != nil {
		return m.writeErr
	}
	if messageType == websocket.TextMessage {
		m.messages = append(m.messages, data)
	}
	return nil
}

func (m *mockConn) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.done)
	}
	return nil
}

func (m *mockConn) SetReadLimit(limit int64)            {}
func (m *mockConn) SetReadDeadline(t time.Time) error   { return nil }
func (m *mockConn) SetWriteDeadline(t time.Time) error  { return nil }
func (m *mockConn) SetPongHandler(h func(string) error) {}

func (m *mockConn) queueInbound(data []byte) {
	m.inbound <- data
}

func (m *mockConn) failWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErr = err
}

func (m *mockConn) sentMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([][]byte, len(m.messages))
	copy(result, m.messages)
	return result
}

// newTestClient registers a fresh client backed by a mockConn without
// starting its pumps. Tests drain the send channel directly.
func newTestClient(registry *Registry, userID string) (*Client, *mockConn) {
	conn := newMockConn()
	client := NewClient(registry, conn, userID)
	registry.Register(client)
	return client, conn
}

// drainOne pops a single queued frame from the client's send buffer.
func drainOne(c *Client) ([]byte, bool) {
	select {
	case data := <-c.send:
		return data, true
	default:
		return nil, false
	}
}
