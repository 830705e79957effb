package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Titan0-08/Fitness-Web/internal/handlers"
	"github.com/Titan0-08/Fitness-Web/internal/middleware"
)

func RegisterUserRoutes(r gin.IRouter) {
	r.GET("/user_data", middleware.SessionAuth(), handlers.GetUserData)
	r.GET("/debug/user-data", middleware.SessionAuth(), handlers.DebugUserData)

	user := r.Group("/user")
	user.Use(middleware.SessionAuth())
	{
		user.POST("/track-view", handlers.TrackView)
		user.GET("/recent-views", handlers.GetRecentViews)
		user.POST("/remove-recent-view", handlers.RemoveRecentView)
		user.POST("/clear-recent-views", handlers.ClearRecentViews)
		user.GET("/groups", handlers.GetUserGroups)
	}
}
