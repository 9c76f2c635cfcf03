package handlers

import (
	"net/http"
	"strconv"

	"dashboard-service/internal/models"
	"dashboard-service/internal/services"

	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	weatherService *services.WeatherService
}

func NewWeatherHandler(weatherService *services.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// GetCurrentWeather godoc
// @Summary Current weather
// @Description Pass-through to OpenWeather current conditions, by city name or coordinates
// @Tags weather
// @Produce json
// @Security BearerAuth
// @Param city query string false "City name"
// @Param lat query number false "Latitude (with lon)"
// @Param lon query number false "Longitude (with lat)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse "Missing city or coordinates"
// @Failure 502 {object} models.ErrorResponse "Upstream error"
// @Router /weather/current [get]
func (h *WeatherHandler) GetCurrentWeather(c *gin.Context) {
	city := c.Query("city")
	latStr, lonStr := c.Query("lat"), c.Query("lon")

	if city == "" && (latStr == "" || lonStr == "") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "city or lat/lon is required",
		})
		return
	}

	if city != "" {
		data, err := h.weatherService.GetCurrentWeather(c.Request.Context(), city)
		if err != nil {
			writeUpstreamError(c, err)
			return
		}
		writeRawJSON(c, data)
		return
	}

	lat, err1 := strconv.ParseFloat(latStr, 64)
	lon, err2 := strconv.ParseFloat(lonStr, 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid coordinates",
		})
		return
	}

	data, err := h.weatherService.GetWeatherByCoordinates(c.Request.Context(), lat, lon)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	writeRawJSON(c, data)
}

// GetForecast godoc
// @Summary Weather forecast
// @Description Pass-through to the OpenWeather 5-day forecast for a city
// @Tags weather
// @Produce json
// @Security BearerAuth
// @Param city query string true "City name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse "Missing city"
// @Failure 502 {object} models.ErrorResponse "Upstream error"
// @Router /weather/forecast [get]
func (h *WeatherHandler) GetForecast(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "city is required",
		})
		return
	}

	data, err := h.weatherService.GetForecast(c.Request.Context(), city)
	if err != nil {
		writeUpstreamError(c, err)
		return
	}
	writeRawJSON(c, data)
}
