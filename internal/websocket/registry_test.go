package websocket

import (
	"testing"
)

func TestRegisterReplacesPreviousConnection(t *testing.T) {
	registry := NewRegistry()

	c1, _ := newTestClient(registry, "u1")
	c2, _ := newTestClient(registry, "u1")

	if registry.Len() != 1 {
		t.Fatalf("expected 1 registered connection, got %d", registry.Len())
	}

	if got := registry.Get("u1"); got != c2 {
		t.Errorf("expected newest connection to be current, got client %s", got.ID())
	}

	for _, c := range registry.All() {
		if c == c1 {
			t.Errorf("superseded connection still present in snapshot")
		}
	}

	// The superseded connection is force-closed by policy.
	if c1.State() != StateClosed {
		t.Errorf("expected superseded connection to be closed, state = %d", c1.State())
	}
	if !c2.IsOpen() {
		t.Errorf("new connection must stay open after superseding")
	}
}

func TestStaleCloseCannotEvictNewerConnection(t *testing.T) {
	registry := NewRegistry()

	c1 := NewClient(registry, newMockConn(), "u1")
	registry.Register(c1)
	c2 := NewClient(registry, newMockConn(), "u1")
	registry.Register(c2)

	// c1's own teardown fires after it was superseded.
	if removed := registry.Remove("u1", c1); removed {
		t.Errorf("stale connection must not evict the newer registration")
	}

	if got := registry.Get("u1"); got != c2 {
		t.Fatalf("newer connection lost after stale remove")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	c, _ := newTestClient(registry, "u1")

	if removed := registry.Remove("u1", c); !removed {
		t.Fatalf("first remove should delete the entry")
	}
	if removed := registry.Remove("u1", c); removed {
		t.Errorf("second remove with same identity should be a no-op")
	}
	if registry.Len() != 0 {
		t.Errorf("registry should be empty, has %d entries", registry.Len())
	}
}

func TestApplySubscribeReplacesChannelSet(t *testing.T) {
	registry := NewRegistry()
	c, _ := newTestClient(registry, "u1")

	registry.ApplySubscribe("u1", []string{"stock_update", "news_alert"})
	if !c.Subscribed(EventTypeStockUpdate) || !c.Subscribed(EventTypeNewsAlert) {
		t.Fatalf("expected both channels subscribed, got %v", c.Channels())
	}

	// A later directive replaces the set, it does not union.
	registry.ApplySubscribe("u1", []string{"weather_update"})
	if c.Subscribed(EventTypeStockUpdate) {
		t.Errorf("old subscription survived replacement")
	}
	if !c.Subscribed(EventTypeWeatherUpdate) {
		t.Errorf("new subscription missing after replacement")
	}
}

func TestApplySubscribeUnknownUserIsDropped(t *testing.T) {
	registry := NewRegistry()

	// Must not panic or create an entry.
	registry.ApplySubscribe("ghost", []string{"stock_update"})

	if registry.Len() != 0 {
		t.Errorf("subscribe for unregistered user created an entry")
	}
}

func TestAllReturnsSnapshot(t *testing.T) {
	registry := NewRegistry()
	newTestClient(registry, "u1")
	newTestClient(registry, "u2")

	snapshot := registry.All()
	if len(snapshot) != 2 {
		t.Fatalf("expected snapshot of 2, got %d", len(snapshot))
	}

	// Mutating the registry must not affect an existing snapshot.
	registry.Remove("u1", registry.Get("u1"))
	if len(snapshot) != 2 {
		t.Errorf("snapshot changed after registry mutation")
	}
}
