package websocket

import (
	"encoding/json"
	"time"
)

// EventType identifies the channel an event is published on.
type EventType string

const (
	EventTypeStockUpdate   EventType = "stock_update"
	EventTypeNewsAlert     EventType = "news_alert"
	EventTypeWeatherUpdate EventType = "weather_update"
	EventTypeNotification  EventType = "notification"
)

// String returns the string representation of the EventType.
func (et EventType) String() string {
	return string(et)
}

// IsValid checks if the EventType is a known channel name. Events with an
// unknown type can still be published but will never match a subscription.
func (et EventType) IsValid() bool {
	switch et {
	case EventTypeStockUpdate, EventTypeNewsAlert, EventTypeWeatherUpdate, EventTypeNotification:
		return true
	default:
		return false
	}
}

// AllEventTypes returns every known channel name.
func AllEventTypes() []EventType {
	return []EventType{
		EventTypeStockUpdate, EventTypeNewsAlert, EventTypeWeatherUpdate, EventTypeNotification,
	}
}

// Event is the server-to-client frame. The payload is opaque to the broker;
// it is shaped by the producer and only serialized here.
type Event struct {
	Type      EventType   `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// NewEvent stamps an event with the current time in RFC 3339 / ISO-8601.
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Marshal serializes the event once for fan-out. All recipients of a single
// publish receive these exact bytes.
func (e *Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Directive type accepted from clients.
const DirectiveSubscribe = "subscribe"

// SubscribeDirective is the only client-to-server control message. Channel
// names outside the known enumeration are accepted and simply never matched.
type SubscribeDirective struct {
	Type     string   `json:"type"`
	Channels []string `json:"channels"`
}
