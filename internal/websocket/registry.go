package websocket

import (
	"log/slog"
	"sync"
)

// Registry holds the live set of authenticated connections, keyed by user
// identity. Invariant: at most one current connection per user. All mutations
// and the broadcast snapshot go through one mutex since client pumps and
// publishers run on separate goroutines.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]*Client),
	}
}

// Register makes the client the current connection for its user. A superseded
// connection is force-closed; its own teardown cannot evict the newer entry
// because removal is guarded by connection identity.
func (r *Registry) Register(client *Client) {
	r.mu.Lock()
	prev := r.clients[client.userID]
	r.clients[client.userID] = client
	r.mu.Unlock()

	slog.Info("Client registered", "clientID", client.id, "userID", client.userID)

	if prev != nil && prev != client {
		slog.Info("Superseding previous connection", "userID", client.userID, "prevClientID", prev.id)
		prev.Close()
	}
}

// ApplySubscribe replaces the channel set of the user's current connection.
// A directive racing ahead of registration is silently dropped.
func (r *Registry) ApplySubscribe(userID string, channels []string) {
	r.mu.RLock()
	client := r.clients[userID]
	r.mu.RUnlock()

	if client == nil {
		slog.Debug("Subscribe for unknown user dropped", "userID", userID)
		return
	}
	client.SetChannels(channels)
}

// Remove deletes the entry for userID only if it still points at the given
// client. Stale teardowns (close after error, or a superseded connection
// closing late) are no-ops. Reports whether an entry was removed.
func (r *Registry) Remove(userID string, client *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.clients[userID]
	if !ok || current != client {
		return false
	}
	delete(r.clients, userID)
	return true
}

// Get returns the current connection for userID, or nil.
func (r *Registry) Get(userID string) *Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.clients[userID]
}

// All returns a snapshot of current connections for broadcast iteration.
// Connections registered mid-broadcast may or may not be included.
func (r *Registry) All() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*Client, 0, len(r.clients))
	for _, client := range r.clients {
		clients = append(clients, client)
	}
	return clients
}

// Len reports the number of registered connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}
