package handlers

import (
	"net/http"
	"strconv"

	"dashboard-service/internal/models"
	"dashboard-service/internal/services"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	newsService *services.NewsService
}

func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// GetHeadlines godoc
// @Summary Top headlines
// @Description Pass-through to NewsAPI top headlines, optionally filtered by category
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category (business, technology, ...)"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} models.ErrorResponse "Upstream error"
// @Router /news/headlines [get]
func (h *NewsHandler) GetHeadlines(c *gin.Context) {
	data, err := h.newsService.GetTopHeadlines(c.Request.Context(), c.Query("category"), pageParam(c))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	writeRawJSON(c, data)
}

// SearchNews godoc
// @Summary Search news
// @Description Pass-through to NewsAPI full-text search, sorted by publish time
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse "Missing query"
// @Failure 502 {object} models.ErrorResponse "Upstream error"
// @Router /news/search [get]
func (h *NewsHandler) SearchNews(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "q is required",
		})
		return
	}

	data, err := h.newsService.SearchNews(c.Request.Context(), query, pageParam(c))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	writeRawJSON(c, data)
}
