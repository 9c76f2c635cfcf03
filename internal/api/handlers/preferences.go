package handlers

import (
	"errors"
	"net/http"

	"dashboard-service/internal/models"
	"dashboard-service/internal/services"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	prefService *services.PreferenceService
}

func NewPreferencesHandler(prefService *services.PreferenceService) *PreferencesHandler {
	return &PreferencesHandler{prefService: prefService}
}

// GetPreferences godoc
// @Summary Get user preferences
// @Description Returns the stored dashboard settings for the authenticated user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserPreferences
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "No preferences stored yet"
// @Router /user/preferences [get]
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID := c.GetUint("user_id")

	prefs, err := h.prefService.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrPreferencesNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "No preferences stored",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to fetch preferences",
		})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences godoc
// @Summary Update user preferences
// @Description Upserts the dashboard settings (language, theme, notifications) for the authenticated user
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PreferencesRequest true "Preferences"
// @Success 200 {object} models.UserPreferences
// @Failure 400 {object} models.ErrorResponse "Bad request - invalid input data"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /user/preferences [put]
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid input data",
			Details: err.Error(),
		})
		return
	}

	prefs, err := h.prefService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update preferences",
		})
		return
	}

	c.JSON(http.StatusOK, prefs)
}
