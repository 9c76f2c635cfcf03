package handlers

import (
	"net/http"

	"dashboard-service/internal/models"
	"dashboard-service/internal/services"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	financeService *services.FinanceService
}

func NewFinanceHandler(financeService *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// GetQuote godoc
// @Summary Stock quote
// @Description Current quote for one symbol, reshaped from Alpha Vantage
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} services.StockQuote
// @Failure 502 {object} models.ErrorResponse "Upstream error"
// @Router /finance/quote/{symbol} [get]
func (h *FinanceHandler) GetQuote(c *gin.Context) {
	quote, err := h.financeService.GetQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GetHistory godoc
// @Summary Historical prices
// @Description Raw time series for a symbol over a range (1d, 1w, 1m, 1y)
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param symbol path string true "Ticker symbol"
// @Param range query string false "Time range" default(1w)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse "Unknown time range"
// @Failure 502 {object} models.ErrorResponse "Upstream error"
// @Router /finance/history/{symbol} [get]
func (h *FinanceHandler) GetHistory(c *gin.Context) {
	timeRange := c.DefaultQuery("range", "1w")

	data, err := h.financeService.GetHistoricalData(c.Request.Context(), c.Param("symbol"), timeRange)
	if err != nil {
		if err == services.ErrUnknownTimeRange {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "unknown time range",
				Details: timeRange,
			})
			return
		}
		writeUpstreamError(c, err)
		return
	}
	writeRawJSON(c, data)
}

// SearchSymbols godoc
// @Summary Symbol search
// @Description Search ticker symbols by keyword
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search keywords"
// @Success 200 {array} services.SymbolMatch
// @Failure 400 {object} models.ErrorResponse "Missing query"
// @Failure 502 {object} models.ErrorResponse "Upstream error"
// @Router /finance/search [get]
func (h *FinanceHandler) SearchSymbols(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "q is required",
		})
		return
	}

	matches, err := h.financeService.SearchSymbols(c.Request.Context(), query)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}
