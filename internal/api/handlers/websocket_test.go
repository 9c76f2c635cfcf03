package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dashboard-service/internal/api/middleware"
	ws "dashboard-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, userID uint) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   "user@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func newRealtimeServer(t *testing.T) (*httptest.Server, *ws.Registry, *ws.Broadcaster) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := ws.NewRegistry()
	broadcaster := ws.NewBroadcaster(registry)
	authMW := middleware.NewAuthMiddleware(testSecret)

	engine := gin.New()
	engine.GET("/api/v1/ws", authMW.WSAuth(), NewWSHandler(registry, nil).HandleWebSocket)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv, registry, broadcaster
}

func dialRealtime(t *testing.T, srv *httptest.Server, token string) *gorilla.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/ws?token=" + token
	conn, _, err := gorilla.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *gorilla.Conn) ws.Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev ws.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	return ev
}

func TestUpgradeRejectsMissingSession(t *testing.T) {
	srv, registry, _ := newRealtimeServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/ws")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 0, registry.Len(), "no connection may be created without a session")
}

func TestUpgradeRejectsInvalidToken(t *testing.T) {
	srv, registry, _ := newRealtimeServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/ws?token=not-a-jwt")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, 0, registry.Len())
}

func TestSubscribeAndReceiveEvent(t *testing.T) {
	srv, registry, broadcaster := newRealtimeServer(t)

	conn := dialRealtime(t, srv, signTestToken(t, 7))

	require.Eventually(t, func() bool {
		return registry.Get("7") != nil
	}, 2*time.Second, 10*time.Millisecond, "connection was not registered")

	require.NoError(t, conn.WriteMessage(gorilla.TextMessage,
		[]byte(`{"type":"subscribe","channels":["stock_update"]}`)))

	require.Eventually(t, func() bool {
		return registry.Get("7").Subscribed(ws.EventTypeStockUpdate)
	}, 2*time.Second, 10*time.Millisecond, "subscribe directive was not applied")

	broadcaster.Publish(ws.EventTypeStockUpdate, map[string]interface{}{"symbol": "AAPL", "price": 150})

	ev := readEvent(t, conn)
	require.Equal(t, ws.EventTypeStockUpdate, ev.Type)
	payload, ok := ev.Data.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "AAPL", payload["symbol"])
}

func TestMalformedFrameLeavesConnectionUsable(t *testing.T) {
	srv, registry, broadcaster := newRealtimeServer(t)

	conn := dialRealtime(t, srv, signTestToken(t, 9))

	require.Eventually(t, func() bool {
		return registry.Get("9") != nil
	}, 2*time.Second, 10*time.Millisecond)

	// Garbage frame is logged and ignored server-side.
	require.NoError(t, conn.WriteMessage(gorilla.TextMessage, []byte("not json at all")))

	// The connection survives and a later valid directive still applies.
	require.NoError(t, conn.WriteMessage(gorilla.TextMessage,
		[]byte(`{"type":"subscribe","channels":["news_alert"]}`)))

	require.Eventually(t, func() bool {
		client := registry.Get("9")
		return client != nil && client.Subscribed(ws.EventTypeNewsAlert)
	}, 2*time.Second, 10*time.Millisecond, "connection unusable after malformed frame")

	broadcaster.Publish(ws.EventTypeNewsAlert, map[string]interface{}{"headline": "X"})

	ev := readEvent(t, conn)
	require.Equal(t, ws.EventTypeNewsAlert, ev.Type)
}

func TestSecondConnectionSupersedesFirst(t *testing.T) {
	srv, registry, broadcaster := newRealtimeServer(t)

	first := dialRealtime(t, srv, signTestToken(t, 5))
	require.Eventually(t, func() bool {
		return registry.Get("5") != nil
	}, 2*time.Second, 10*time.Millisecond)
	firstClient := registry.Get("5")

	second := dialRealtime(t, srv, signTestToken(t, 5))
	require.Eventually(t, func() bool {
		current := registry.Get("5")
		return current != nil && current != firstClient
	}, 2*time.Second, 10*time.Millisecond, "second connection did not supersede the first")

	require.Equal(t, 1, registry.Len(), "one live connection per user")

	require.NoError(t, second.WriteMessage(gorilla.TextMessage,
		[]byte(`{"type":"subscribe","channels":["notification"]}`)))
	require.Eventually(t, func() bool {
		return registry.Get("5").Subscribed(ws.EventTypeNotification)
	}, 2*time.Second, 10*time.Millisecond)

	broadcaster.PublishToUser("5", ws.EventTypeNotification, map[string]interface{}{"title": "hi"})

	ev := readEvent(t, second)
	require.Equal(t, ws.EventTypeNotification, ev.Type)

	// The superseded connection is closed by the server.
	first.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		if _, _, err := first.ReadMessage(); err != nil {
			break
		}
	}
}
