package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Titan0-08/Fitness-Web/internal/handlers"
	"github.com/Titan0-08/Fitness-Web/internal/middleware"
	"github.com/Titan0-08/Fitness-Web/internal/models"
)

func RegisterBlogRoutes(r gin.IRouter) {
	// Public reads; single-item reads pick up the session when present
	// so views land in the caller's recent list
	r.GET("/blogs", handlers.GetBlogs)
	r.GET("/blog/:id", middleware.OptionalSessionAuth(), handlers.GetBlog)

	admin := r.Group("/admin")
	admin.Use(middleware.SessionAuth(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/blogs", handlers.GetAdminBlogs)
		admin.POST("/blogs", handlers.CreateBlog)
		admin.PUT("/blogs/:id", handlers.UpdateBlog)
		admin.DELETE("/blogs/:id", handlers.DeleteBlog)
	}
}
