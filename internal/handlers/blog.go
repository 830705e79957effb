package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/models"
	"github.com/Titan0-08/Fitness-Web/internal/services"
	appErrors "github.com/Titan0-08/Fitness-Web/pkg/errors"
	"github.com/Titan0-08/Fitness-Web/pkg/logger"
	"github.com/Titan0-08/Fitness-Web/pkg/utils"
)

const (
	blogCacheKey     = "cache:blogs:published"
	contentCacheTTL  = 5 * time.Minute
	defaultBlogImage = "https://placehold.co/600x400/3d3d3d/ffffff?text=Blog+Image"
)

// trackContentView records a content view for the session user, if any.
// Tracking is best-effort: failures are logged and never surface.
func trackContentView(c *gin.Context, view models.ViewRecord) {
	userID, exists := c.Get("userId")
	if !exists {
		return
	}
	if err := services.RecordView(userID.(string), view); err != nil {
		logger.Warn().
			Err(err).
			Str("user_id", userID.(string)).
			Str("type", string(view.Type)).
			Str("content_id", view.ID).
			Msg("Could not track content view")
	}
}

// GetBlogs returns all published blog posts for the client site.
func GetBlogs(c *gin.Context) {
	var blogs []models.Blog

	if err := database.CacheGet(blogCacheKey, &blogs); err == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "blogs": blogs})
		return
	}

	err := database.DB.
		Where("status = ?", models.StatusPublished).
		Order(`"createdAt" DESC`).
		Find(&blogs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := database.CacheSet(blogCacheKey, blogs, contentCacheTTL); err != nil {
		logger.Debug().Err(err).Msg("Blog list cache write skipped")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "blogs": blogs})
}

// GetBlog returns a single blog post by id. If the caller has an active
// session the read is recorded in their recent views.
func GetBlog(c *gin.Context) {
	blogID := c.Param("id")

	var blog models.Blog
	if err := database.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Blog not found"})
		return
	}

	trackContentView(c, models.ViewRecord{
		Type:        models.ViewTypeBlog,
		ID:          blog.ID,
		Title:       blog.Title,
		Description: blog.ShortDesc,
		Image:       blog.Image,
		URL:         "/blog/" + blog.ID,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "blog": blog})
}

// GetAdminBlogs returns every blog post, drafts included.
func GetAdminBlogs(c *gin.Context) {
	var blogs []models.Blog
	if err := database.DB.Order(`"createdAt" DESC`).Find(&blogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "blogs": blogs})
}

type blogInput struct {
	Title     string `json:"title"`
	ShortDesc string `json:"shortDesc"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	Image     string `json:"image"`
}

func (in *blogInput) validate() *appErrors.AppError {
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"shortDesc", in.ShortDesc},
		{"content", in.Content},
		{"status", in.Status},
	} {
		if f.value == "" {
			return appErrors.MissingField(f.name)
		}
	}
	return nil
}

// CreateBlog creates a new blog post. Admin only.
func CreateBlog(c *gin.Context) {
	var input blogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	if appErr := input.validate(); appErr != nil {
		c.JSON(appErr.Code, gin.H{"success": false, "error": appErr.Message})
		return
	}

	blog := models.Blog{
		ID:        utils.GenerateID(),
		Title:     input.Title,
		ShortDesc: input.ShortDesc,
		Content:   input.Content,
		Status:    models.ContentStatus(input.Status),
		Date:      input.Date,
		Image:     input.Image,
		Author:    sessionEmailOr(c, "Admin"),
		AuthorID:  c.MustGet("userId").(string),
	}
	if blog.Date == "" {
		blog.Date = time.Now().Format("2006-01-02")
	}
	if blog.Image == "" {
		blog.Image = defaultBlogImage
	}

	if err := database.DB.Create(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	invalidateContentCache(blogCacheKey)

	logger.Info().Str("blog_id", blog.ID).Msg("Blog created")
	c.JSON(http.StatusCreated, gin.H{"success": true, "blog": blog, "message": "Blog created successfully"})
}

// UpdateBlog merges the supplied fields into an existing blog post.
func UpdateBlog(c *gin.Context) {
	blogID := c.Param("id")

	var data map[string]json.RawMessage
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	var blog models.Blog
	if err := database.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Blog not found"})
		return
	}

	updates := map[string]interface{}{"updatedAt": time.Now()}
	for _, field := range []string{"title", "shortDesc", "content", "status", "date", "image"} {
		raw, ok := data[field]
		if !ok {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid value for field: " + field})
			return
		}
		updates[field] = value
	}

	if err := database.DB.Model(&blog).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	invalidateContentCache(blogCacheKey)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog updated successfully"})
}

// DeleteBlog removes a blog post. Recent-view entries pointing at it
// are left alone; deletion is out of band for the tracker.
func DeleteBlog(c *gin.Context) {
	blogID := c.Param("id")

	var blog models.Blog
	if err := database.DB.First(&blog, "id = ?", blogID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Blog not found"})
		return
	}

	if err := database.DB.Delete(&blog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	invalidateContentCache(blogCacheKey)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog deleted successfully"})
}

func sessionEmailOr(c *gin.Context, fallback string) string {
	if email, exists := c.Get("email"); exists {
		if s, ok := email.(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

func invalidateContentCache(key string) {
	if err := database.CacheInvalidate(key); err != nil {
		logger.Debug().Err(err).Str("key", key).Msg("Cache invalidation skipped")
	}
}
