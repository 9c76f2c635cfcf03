package websocket

import (
	"bytes"
	"encoding/json"
	"testing"
)

func decodeEvent(t *testing.T, data []byte) Event {
	t.Helper()
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("broadcast frame is not valid JSON: %v", err)
	}
	return ev
}

func TestPublishSkipsUnsubscribedConnections(t *testing.T) {
	registry := NewRegistry()
	b := NewBroadcaster(registry)

	// Scenario: registered but empty subscription set.
	c, _ := newTestClient(registry, "u1")

	b.Publish(EventTypeStockUpdate, map[string]interface{}{"symbol": "AAPL"})

	if _, ok := drainOne(c); ok {
		t.Errorf("connection with no subscriptions received an event")
	}
}

func TestPublishDeliversExactlyOnceToSubscriber(t *testing.T) {
	registry := NewRegistry()
	b := NewBroadcaster(registry)

	c, _ := newTestClient(registry, "u1")
	registry.ApplySubscribe("u1", []string{"stock_update"})

	b.Publish(EventTypeStockUpdate, map[string]interface{}{"symbol": "AAPL", "price": 150})

	data, ok := drainOne(c)
	if !ok {
		t.Fatalf("subscriber received no event")
	}
	if _, again := drainOne(c); again {
		t.Fatalf("subscriber received more than one send for a single publish")
	}

	ev := decodeEvent(t, data)
	if ev.Type != EventTypeStockUpdate {
		t.Errorf("wrong event type %q", ev.Type)
	}
	if ev.Timestamp == "" {
		t.Errorf("event missing producer timestamp")
	}
	payload, _ := ev.Data.(map[string]interface{})
	if payload["symbol"] != "AAPL" || payload["price"] != float64(150) {
		t.Errorf("unexpected payload: %v", ev.Data)
	}
}

func TestPublishFansOutIdenticalBytes(t *testing.T) {
	registry := NewRegistry()
	b := NewBroadcaster(registry)

	c1, _ := newTestClient(registry, "u1")
	c2, _ := newTestClient(registry, "u2")
	registry.ApplySubscribe("u1", []string{"news_alert"})
	registry.ApplySubscribe("u2", []string{"news_alert"})

	b.Publish(EventTypeNewsAlert, map[string]interface{}{"headline": "X"})

	d1, ok1 := drainOne(c1)
	d2, ok2 := drainOne(c2)
	if !ok1 || !ok2 {
		t.Fatalf("both subscribers must receive the event (got %v, %v)", ok1, ok2)
	}
	if !bytes.Equal(d1, d2) {
		t.Errorf("recipients received different bytes for one publish:\n%s\n%s", d1, d2)
	}
}

func TestPublishIsolatesFailingRecipient(t *testing.T) {
	registry := NewRegistry()
	b := NewBroadcaster(registry)

	bad, _ := newTestClient(registry, "u1")
	good, _ := newTestClient(registry, "u2")
	registry.ApplySubscribe("u1", []string{"weather_update"})
	registry.ApplySubscribe("u2", []string{"weather_update"})

	// Saturate the failing recipient's send buffer so its transport rejects
	// the next push.
	for i := 0; i < cap(bad.send); i++ {
		bad.send <- []byte("x")
	}

	b.Publish(EventTypeWeatherUpdate, map[string]interface{}{"location": "Berlin"})

	if _, ok := drainOne(good); !ok {
		t.Errorf("healthy recipient lost the event because another send failed")
	}
	if bad.IsOpen() {
		t.Errorf("recipient with dead transport should be closing")
	}
}

func TestPublishIgnoresClosedConnections(t *testing.T) {
	registry := NewRegistry()
	b := NewBroadcaster(registry)

	c, _ := newTestClient(registry, "u1")
	registry.ApplySubscribe("u1", []string{"notification"})
	c.markClosing()

	b.Publish(EventTypeNotification, map[string]interface{}{"title": "hi"})

	if _, ok := drainOne(c); ok {
		t.Errorf("closed connection received an event")
	}
}

func TestPublishUnknownChannelReachesNobody(t *testing.T) {
	registry := NewRegistry()
	b := NewBroadcaster(registry)

	c, _ := newTestClient(registry, "u1")
	registry.ApplySubscribe("u1", []string{"stock_update", "news_alert", "weather_update", "notification"})

	b.Publish(EventType("bogus"), map[string]interface{}{})

	if _, ok := drainOne(c); ok {
		t.Errorf("event with unknown type matched a subscriber")
	}
}

func TestPublishToUserMissingUserIsNoOp(t *testing.T) {
	registry := NewRegistry()
	b := NewBroadcaster(registry)

	// Must not panic or error.
	b.PublishToUser("unknown-user", EventTypeNotification, map[string]interface{}{"title": "hello"})
}

func TestPublishToUserDeliversOnlyToTarget(t *testing.T) {
	registry := NewRegistry()
	b := NewBroadcaster(registry)

	target, _ := newTestClient(registry, "u1")
	other, _ := newTestClient(registry, "u2")
	registry.ApplySubscribe("u2", []string{"notification"})

	b.Notify("u1", map[string]interface{}{"title": "personal"})

	if _, ok := drainOne(target); !ok {
		t.Errorf("targeted user did not receive the notification")
	}
	if _, ok := drainOne(other); ok {
		t.Errorf("notification leaked to a non-target connection")
	}
}

func TestPublishStockUpdateMergesSymbol(t *testing.T) {
	registry := NewRegistry()
	b := NewBroadcaster(registry)

	c, _ := newTestClient(registry, "u1")
	registry.ApplySubscribe("u1", []string{"stock_update"})

	b.PublishStockUpdate("AAPL", map[string]interface{}{"price": 150.0})

	data, ok := drainOne(c)
	if !ok {
		t.Fatalf("subscriber received no event")
	}
	ev := decodeEvent(t, data)
	payload, _ := ev.Data.(map[string]interface{})
	if payload["symbol"] != "AAPL" || payload["price"] != 150.0 {
		t.Errorf("expected symbol merged into payload, got %v", ev.Data)
	}
}

func TestStatsEnumeratesEveryChannel(t *testing.T) {
	registry := NewRegistry()
	b := NewBroadcaster(registry)

	newTestClient(registry, "u1")
	registry.ApplySubscribe("u1", []string{"stock_update"})

	stats := b.Stats()
	if stats["connections"] != 1 {
		t.Errorf("expected 1 connection, got %v", stats["connections"])
	}

	perChannel, ok := stats["subscriptions"].(map[string]int)
	if !ok {
		t.Fatalf("subscriptions has unexpected type %T", stats["subscriptions"])
	}
	for _, et := range AllEventTypes() {
		if _, present := perChannel[et.String()]; !present {
			t.Errorf("channel %s missing from stats", et)
		}
	}
	if perChannel["stock_update"] != 1 {
		t.Errorf("expected 1 stock_update subscriber, got %d", perChannel["stock_update"])
	}
	if perChannel["news_alert"] != 0 {
		t.Errorf("expected 0 news_alert subscribers, got %d", perChannel["news_alert"])
	}
}
