package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	appErrors "github.com/Titan0-08/Fitness-Web/pkg/errors"
	"github.com/Titan0-08/Fitness-Web/internal/models"
	"github.com/Titan0-08/Fitness-Web/internal/services"
	"github.com/Titan0-08/Fitness-Web/pkg/logger"
)

type trackViewInput struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	URL         string `json:"url"`
}

// TrackView records a viewed content item for the current user.
func TrackView(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var input trackViewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	for field, value := range map[string]string{
		"type":  input.Type,
		"id":    input.ID,
		"title": input.Title,
		"url":   input.URL,
	} {
		if value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": appErrors.MissingField(field).Message})
			return
		}
	}

	viewType := models.ViewType(input.Type)
	if viewType != models.ViewTypeBlog && viewType != models.ViewTypeRecipe {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid view type"})
		return
	}

	view := models.ViewRecord{
		Type:        viewType,
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		URL:         input.URL,
	}

	if err := services.RecordView(userID, view); err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Failed to track view")
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "Failed to track view"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "View tracked successfully"})
}

// GetRecentViews returns the user's recently viewed items, newest first.
func GetRecentViews(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	views, err := services.ListViews(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recent_views": views})
}

type removeViewInput struct {
	ViewID   string `json:"viewId"`
	ViewType string `json:"viewType"`
}

// RemoveRecentView drops a single entry from the user's list.
func RemoveRecentView(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var input removeViewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	if input.ViewID == "" || input.ViewType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing viewId or viewType"})
		return
	}

	err := services.RemoveView(userID, models.ViewType(input.ViewType), input.ViewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "View removed successfully"})
}

// ClearRecentViews empties the user's list.
func ClearRecentViews(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	if err := services.ClearViews(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recent views cleared successfully"})
}
