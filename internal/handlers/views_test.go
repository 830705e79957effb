package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Titan0-08/Fitness-Web/internal/models"
	"github.com/Titan0-08/Fitness-Web/internal/services"
)

func TestTrackView_MissingRequiredField(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/user/track-view", gin.H{
		"type": "blog",
		"id":   "b1",
		// no title, no url
	})
	c.Set("userId", "tracker1")

	TrackView(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required field")
}

func TestTrackView_InvalidType(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/user/track-view", gin.H{
		"type":  "podcast",
		"id":    "p1",
		"title": "Nope",
		"url":   "/podcast/p1",
	})
	c.Set("userId", "tracker2")

	TrackView(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackView_ThenListShowsEntry(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/user/track-view", gin.H{
		"type":  "recipe",
		"id":    "r42",
		"title": "Overnight Oats",
		"url":   "/recipe/r42",
	})
	c.Set("userId", "tracker3")

	TrackView(c)
	assert.Equal(t, http.StatusOK, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request, _ = http.NewRequest("GET", "/api/user/recent-views", nil)
	c2.Set("userId", "tracker3")

	GetRecentViews(c2)

	assert.Equal(t, http.StatusOK, w2.Code)

	var response struct {
		RecentViews []models.ViewRecord `json:"recent_views"`
	}
	json.Unmarshal(w2.Body.Bytes(), &response)

	if assert.Len(t, response.RecentViews, 1) {
		assert.Equal(t, "r42", response.RecentViews[0].ID)
		assert.False(t, response.RecentViews[0].ViewedAt.IsZero())
	}
}

func TestGetRecentViews_EmptyForUnknownUser(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/user/recent-views", nil)
	c.Set("userId", "tracker_unknown")

	GetRecentViews(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success     bool                `json:"success"`
		RecentViews []models.ViewRecord `json:"recent_views"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.True(t, response.Success)
	assert.Empty(t, response.RecentViews)
}

func TestRemoveRecentView_ThenListExcludesEntry(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	services.RecordView("tracker4", models.ViewRecord{Type: models.ViewTypeBlog, ID: "b1", Title: "One", URL: "/blog/b1"})
	services.RecordView("tracker4", models.ViewRecord{Type: models.ViewTypeBlog, ID: "b2", Title: "Two", URL: "/blog/b2"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/user/remove-recent-view", gin.H{
		"viewId":   "b1",
		"viewType": "blog",
	})
	c.Set("userId", "tracker4")

	RemoveRecentView(c)
	assert.Equal(t, http.StatusOK, w.Code)

	views, _ := services.ListViews("tracker4")
	for _, v := range views {
		assert.False(t, v.Type == models.ViewTypeBlog && v.ID == "b1")
	}
}

func TestRemoveRecentView_MissingArgs(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/user/remove-recent-view", gin.H{"viewId": "b1"})
	c.Set("userId", "tracker5")

	RemoveRecentView(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing viewId or viewType")
}

func TestClearRecentViews(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	services.RecordView("tracker6", models.ViewRecord{Type: models.ViewTypeRecipe, ID: "r1", Title: "R", URL: "/recipe/r1"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/api/user/clear-recent-views", nil)
	c.Set("userId", "tracker6")

	ClearRecentViews(c)
	assert.Equal(t, http.StatusOK, w.Code)

	views, _ := services.ListViews("tracker6")
	assert.Empty(t, views)
}
