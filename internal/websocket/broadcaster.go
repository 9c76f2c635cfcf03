package websocket

import (
	"log/slog"
)

// Broadcaster fans events out to subscribed connections. Delivery is
// best-effort: a failed send to one recipient never aborts the fan-out and
// never surfaces to the publisher.
type Broadcaster struct {
	registry *Registry
}

func NewBroadcaster(registry *Registry) *Broadcaster {
	return &Broadcaster{registry: registry}
}

// Publish serializes the event once and pushes the same bytes to every open
// connection subscribed to the event's channel.
func (b *Broadcaster) Publish(eventType EventType, data interface{}) {
	payload, err := NewEvent(eventType, data).Marshal()
	if err != nil {
		slog.Error("Failed to marshal event", "type", eventType, "error", err)
		return
	}

	delivered := 0
	for _, client := range b.registry.All() {
		if !client.Subscribed(eventType) || !client.IsOpen() {
			continue
		}
		if err := client.Send(payload); err != nil {
			slog.Warn("Dropped event for client", "type", eventType, "clientID", client.ID(), "userID", client.UserID(), "error", err)
			continue
		}
		delivered++
	}

	slog.Debug("Event published", "type", eventType, "delivered", delivered)
}

// PublishToUser sends one event to a single user's current connection.
// A missing or closed connection is a silent no-op.
func (b *Broadcaster) PublishToUser(userID string, eventType EventType, data interface{}) {
	client := b.registry.Get(userID)
	if client == nil || !client.IsOpen() {
		return
	}

	payload, err := NewEvent(eventType, data).Marshal()
	if err != nil {
		slog.Error("Failed to marshal event", "type", eventType, "userID", userID, "error", err)
		return
	}

	if err := client.Send(payload); err != nil {
		slog.Warn("Dropped event for user", "type", eventType, "userID", userID, "error", err)
	}
}

// PublishStockUpdate broadcasts a quote refresh for one symbol.
func (b *Broadcaster) PublishStockUpdate(symbol string, data map[string]interface{}) {
	payload := map[string]interface{}{"symbol": symbol}
	for k, v := range data {
		payload[k] = v
	}
	b.Publish(EventTypeStockUpdate, payload)
}

// PublishNewsAlert broadcasts a breaking-news item.
func (b *Broadcaster) PublishNewsAlert(data interface{}) {
	b.Publish(EventTypeNewsAlert, data)
}

// PublishWeatherUpdate broadcasts refreshed conditions for one location.
func (b *Broadcaster) PublishWeatherUpdate(location string, data map[string]interface{}) {
	payload := map[string]interface{}{"location": location}
	for k, v := range data {
		payload[k] = v
	}
	b.Publish(EventTypeWeatherUpdate, payload)
}

// Notify sends a personal notification to one user.
func (b *Broadcaster) Notify(userID string, data interface{}) {
	b.PublishToUser(userID, EventTypeNotification, data)
}

// Stats summarizes the current connection population, for the health surface.
func (b *Broadcaster) Stats() map[string]interface{} {
	clients := b.registry.All()
	perChannel := make(map[string]int, len(AllEventTypes()))
	for _, et := range AllEventTypes() {
		perChannel[et.String()] = 0
	}
	for _, client := range clients {
		for _, ch := range client.Channels() {
			perChannel[ch]++
		}
	}
	return map[string]interface{}{
		"connections":   len(clients),
		"subscriptions": perChannel,
	}
}
