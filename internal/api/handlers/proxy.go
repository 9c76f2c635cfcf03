package handlers

import (
	"errors"
	"net/http"

	"dashboard-service/internal/models"
	"dashboard-service/internal/services"

	"github.com/gin-gonic/gin"
)

// writeUpstreamError maps proxy failures onto this API's error surface: a
// missing credential is a server misconfiguration, an upstream rejection is
// a gateway failure carrying the upstream message.
func writeUpstreamError(c *gin.Context, err error) {
	var upstreamErr *services.UpstreamError
	switch {
	case errors.Is(err, services.ErrMissingAPIKey):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Upstream API is not configured",
		})
	case errors.As(err, &upstreamErr):
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: "Upstream API error",
			Details: upstreamErr.Message,
		})
	default:
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: "Upstream request failed",
		})
	}
}

func writeRawJSON(c *gin.Context, data []byte) {
	c.Data(http.StatusOK, "application/json", data)
}
