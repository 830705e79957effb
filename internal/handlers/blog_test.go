package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Titan0-08/Fitness-Web/internal/config"
	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/models"
	"github.com/Titan0-08/Fitness-Web/internal/services"
)

// SetupTestDB initializes an in-memory SQLite DB for testing
func SetupTestDB() {
	db, _ := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	database.DB = db
	database.DB.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Recipe{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupMessage{},
	)
	database.Redis = nil
	config.AppConfig = &config.Config{SessionSecret: "test_secret_key_12345"}
}

func jsonRequest(method, url string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestGetBlogs_PublishedOnly(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.Blog{ID: "b_pub1", Title: "Published", Status: models.StatusPublished, CreatedAt: time.Now()})
	database.DB.Create(&models.Blog{ID: "b_draft1", Title: "Draft", Status: models.StatusDraft, CreatedAt: time.Now()})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/blogs", nil)

	GetBlogs(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool          `json:"success"`
		Blogs   []models.Blog `json:"blogs"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	assert.True(t, response.Success)
	for _, b := range response.Blogs {
		assert.Equal(t, models.StatusPublished, b.Status)
		assert.NotEqual(t, "b_draft1", b.ID)
	}
}

func TestGetAdminBlogs_IncludesDrafts(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.Blog{ID: "b_pub2", Title: "Published", Status: models.StatusPublished, CreatedAt: time.Now().Add(-time.Hour)})
	database.DB.Create(&models.Blog{ID: "b_draft2", Title: "Draft", Status: models.StatusDraft, CreatedAt: time.Now()})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/admin/blogs", nil)

	GetAdminBlogs(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Blogs []models.Blog `json:"blogs"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	ids := make(map[string]bool)
	for _, b := range response.Blogs {
		ids[b.ID] = true
	}
	assert.True(t, ids["b_pub2"])
	assert.True(t, ids["b_draft2"])
}

func TestCreateBlog_MissingContent(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	var before int64
	database.DB.Model(&models.Blog{}).Count(&before)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/admin/blogs", gin.H{
		"title":     "No content",
		"shortDesc": "short",
		"status":    "draft",
	})
	c.Set("userId", "admin_blog1")
	c.Set("email", "admin@example.com")

	CreateBlog(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required field: content")

	// No store write happened
	var after int64
	database.DB.Model(&models.Blog{}).Count(&after)
	assert.Equal(t, before, after)
}

func TestCreateBlog_AssignsDefaultsAndAuthor(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("POST", "/api/admin/blogs", gin.H{
		"title":     "Leg Day Basics",
		"shortDesc": "squat more",
		"content":   "Full article body",
		"status":    "published",
	})
	c.Set("userId", "admin_blog2")
	c.Set("email", "coach@example.com")

	CreateBlog(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response struct {
		Blog models.Blog `json:"blog"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)

	assert.NotEmpty(t, response.Blog.ID)
	assert.Equal(t, "coach@example.com", response.Blog.Author)
	assert.Equal(t, "admin_blog2", response.Blog.AuthorID)
	assert.NotEmpty(t, response.Blog.Date)
	assert.NotEmpty(t, response.Blog.Image)
}

func TestGetBlog_NotFound(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/blog/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	GetBlog(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBlog_RecordsRecentView(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.User{ID: "viewer1", Email: "viewer1@example.com"})
	database.DB.Create(&models.Blog{ID: "b_view1", Title: "Tracked", ShortDesc: "d", Status: models.StatusPublished, CreatedAt: time.Now()})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/blog/b_view1", nil)
	c.Params = gin.Params{{Key: "id", Value: "b_view1"}}
	c.Set("userId", "viewer1")

	GetBlog(c)

	assert.Equal(t, http.StatusOK, w.Code)

	views, err := services.ListViews("viewer1")
	assert.NoError(t, err)
	if assert.NotEmpty(t, views) {
		assert.Equal(t, "b_view1", views[0].ID)
		assert.Equal(t, models.ViewTypeBlog, views[0].Type)
		assert.Equal(t, "/blog/b_view1", views[0].URL)
	}
}

func TestUpdateBlog_MergesOnlySuppliedFields(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	database.DB.Create(&models.Blog{
		ID: "b_upd1", Title: "Old Title", ShortDesc: "keep me",
		Content: "body", Status: models.StatusDraft, CreatedAt: time.Now(),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest("PUT", "/api/admin/blogs/b_upd1", gin.H{
		"title":  "New Title",
		"status": "published",
	})
	c.Params = gin.Params{{Key: "id", Value: "b_upd1"}}

	UpdateBlog(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var blog models.Blog
	database.DB.First(&blog, "id = ?", "b_upd1")
	assert.Equal(t, "New Title", blog.Title)
	assert.Equal(t, models.StatusPublished, blog.Status)
	assert.Equal(t, "keep me", blog.ShortDesc)
}

func TestDeleteBlog_NotFound(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/api/admin/blogs/nope", nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	DeleteBlog(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
