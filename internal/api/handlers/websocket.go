package handlers

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"dashboard-service/internal/services"
	"dashboard-service/internal/websocket"

	"github.com/gin-gonic/gin"
)

// WSHandler is the single entry point turning an authenticated HTTP request
// into a registered realtime connection.
type WSHandler struct {
	registry     *websocket.Registry
	redisService *services.RedisService
}

func NewWSHandler(registry *websocket.Registry, redisService *services.RedisService) *WSHandler {
	return &WSHandler{
		registry:     registry,
		redisService: redisService,
	}
}

// HandleWebSocket godoc
// @Summary Realtime connection
// @Description Upgrades to a WebSocket. The client then sends {"type":"subscribe","channels":[...]} and receives typed events on its channels.
// @Tags realtime
// @Param token query string true "JWT session token"
// @Success 101 "Switching Protocols"
// @Failure 401 {object} map[string]interface{} "No valid session"
// @Router /ws [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	// Identity was resolved by the WSAuth middleware before the upgrade.
	userID := strconv.FormatUint(uint64(c.GetUint("user_id")), 10)

	conn, err := websocket.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote its failure status to the response.
		slog.Error("WebSocket upgrade failed", "userID", userID, "error", err)
		return
	}

	client := websocket.NewClient(h.registry, conn, userID)
	if h.redisService != nil {
		client.SetOnClose(func(cl *websocket.Client) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if h.registry.Get(cl.UserID()) == nil {
				h.redisService.SetUserOffline(ctx, cl.UserID())
			}
		})
	}

	h.registry.Register(client)
	if h.redisService != nil {
		if err := h.redisService.SetUserOnline(c.Request.Context(), userID); err != nil {
			slog.Warn("Failed to mark user online", "userID", userID, "error", err)
		}
	}

	slog.Info("WebSocket connection established", "clientID", client.ID(), "userID", userID)
	client.Start()
}
