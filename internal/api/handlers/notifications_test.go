package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ws "dashboard-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishedEvent struct {
	channel string
	payload interface{}
}

type fakeBus struct {
	published  []publishedEvent
	publishErr error
	online     []string
}

func (f *fakeBus) PublishEvent(ctx context.Context, channel string, payload interface{}) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, publishedEvent{channel: channel, payload: payload})
	return nil
}

func (f *fakeBus) GetOnlineUsers(ctx context.Context) ([]string, error) {
	return f.online, nil
}

func newRealtimeRouter(bus *fakeBus) (*gin.Engine, *ws.Registry) {
	gin.SetMode(gin.TestMode)
	registry := ws.NewRegistry()
	broadcaster := ws.NewBroadcaster(registry)
	handler := NewNotificationHandler(broadcaster, bus)

	engine := gin.New()
	engine.POST("/events", handler.Broadcast)
	engine.GET("/realtime/stats", handler.Stats)
	return engine, registry
}

func TestBroadcastPublishesOnBus(t *testing.T) {
	bus := &fakeBus{}
	engine, _ := newRealtimeRouter(bus)

	body := `{"channel":"news_alert","data":{"headline":"markets up"}}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, bus.published, 1)
	assert.Equal(t, "news_alert", bus.published[0].channel)

	payload, ok := bus.published[0].payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "markets up", payload["headline"])
}

func TestBroadcastRejectsUnknownChannel(t *testing.T) {
	bus := &fakeBus{}
	engine, _ := newRealtimeRouter(bus)

	body := `{"channel":"chat_message","data":{"text":"hi"}}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, bus.published)
}

func TestBroadcastBusFailure(t *testing.T) {
	bus := &fakeBus{publishErr: errors.New("connection refused")}
	engine, _ := newRealtimeRouter(bus)

	body := `{"channel":"stock_update","data":{"symbol":"AAPL"}}`
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStatsReportsChannelsAndOnlineUsers(t *testing.T) {
	bus := &fakeBus{online: []string{"5", "7"}}
	engine, _ := newRealtimeRouter(bus)

	req := httptest.NewRequest(http.MethodGet, "/realtime/stats", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Connections   int            `json:"connections"`
		Subscriptions map[string]int `json:"subscriptions"`
		OnlineUsers   int            `json:"onlineUsers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))

	assert.Equal(t, 0, stats.Connections)
	assert.Equal(t, 2, stats.OnlineUsers)
	for _, et := range ws.AllEventTypes() {
		assert.Contains(t, stats.Subscriptions, et.String())
	}
}
