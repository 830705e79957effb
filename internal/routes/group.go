package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Titan0-08/Fitness-Web/internal/handlers"
	"github.com/Titan0-08/Fitness-Web/internal/middleware"
)

func RegisterGroupRoutes(r gin.IRouter) {
	groups := r.Group("/groups")
	groups.Use(middleware.SessionAuth())
	{
		groups.GET("", handlers.GetGroups)
		groups.POST("", handlers.CreateGroup)
		groups.GET("/:id", handlers.GetGroup)
		groups.POST("/:id/join", handlers.JoinGroup)
		groups.GET("/:id/messages", handlers.GetGroupMessages)
		groups.POST("/:id/messages", handlers.PostGroupMessage)
	}
}
