package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dashboard-service/internal/models"
	"dashboard-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventBus is the slice of the Redis service the realtime handlers use.
// Publishing through the bus reaches every server instance, not just the
// local broadcaster.
type EventBus interface {
	PublishEvent(ctx context.Context, channel string, payload interface{}) error
	GetOnlineUsers(ctx context.Context) ([]string, error)
}

type NotificationHandler struct {
	broadcaster *websocket.Broadcaster
	bus         EventBus
}

func NewNotificationHandler(broadcaster *websocket.Broadcaster, bus EventBus) *NotificationHandler {
	return &NotificationHandler{broadcaster: broadcaster, bus: bus}
}

type NotifyRequest struct {
	UserID  uint   `json:"userId" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message"`
}

type BroadcastRequest struct {
	Channel string                 `json:"channel" binding:"required"`
	Data    map[string]interface{} `json:"data" binding:"required"`
}

// Notify godoc
// @Summary Send a notification
// @Description Pushes a personal notification to the target user's realtime connection. Delivery is best effort; an absent recipient is not an error.
// @Tags realtime
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NotifyRequest true "Notification"
// @Success 202 {object} map[string]interface{} "Accepted"
// @Failure 400 {object} models.ErrorResponse "Bad request - invalid input data"
// @Router /notifications [post]
func (h *NotificationHandler) Notify(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid input data",
			Details: err.Error(),
		})
		return
	}

	id := uuid.New().String()
	h.broadcaster.Notify(strconv.FormatUint(uint64(req.UserID), 10), map[string]interface{}{
		"id":      id,
		"title":   req.Title,
		"message": req.Message,
		"from":    c.GetUint("user_id"),
		"sentAt":  time.Now().UTC().Format(time.RFC3339),
	})

	c.JSON(http.StatusAccepted, gin.H{"id": id, "status": "accepted"})
}

// Broadcast godoc
// @Summary Broadcast an event to a channel
// @Description Publishes an event on the Redis bus; every server instance picks it up and fans it out to its subscribed connections.
// @Tags realtime
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BroadcastRequest true "Event"
// @Success 202 {object} map[string]interface{} "Accepted"
// @Failure 400 {object} models.ErrorResponse "Bad request - unknown channel or invalid input"
// @Failure 500 {object} models.ErrorResponse "Publish failed"
// @Router /events [post]
func (h *NotificationHandler) Broadcast(c *gin.Context) {
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid input data",
			Details: err.Error(),
		})
		return
	}

	if !websocket.EventType(req.Channel).IsValid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Unknown channel",
			Details: req.Channel,
		})
		return
	}

	if err := h.bus.PublishEvent(c.Request.Context(), req.Channel, req.Data); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to publish event",
		})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"channel": req.Channel, "status": "accepted"})
}

// Stats godoc
// @Summary Realtime connection stats
// @Description Current connection count, per-channel subscription counts, and online user count
// @Tags realtime
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /realtime/stats [get]
func (h *NotificationHandler) Stats(c *gin.Context) {
	stats := h.broadcaster.Stats()
	if h.bus != nil {
		if online, err := h.bus.GetOnlineUsers(c.Request.Context()); err == nil {
			stats["onlineUsers"] = len(online)
		}
	}
	c.JSON(http.StatusOK, stats)
}
