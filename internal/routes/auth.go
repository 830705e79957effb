package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Titan0-08/Fitness-Web/internal/handlers"
	"github.com/Titan0-08/Fitness-Web/internal/middleware"
)

func RegisterAuthRoutes(r gin.IRouter) {
	r.POST("/sessionLogin", handlers.SessionLogin)

	// Logout clears whatever session is present; safe without one
	r.GET("/logout", middleware.OptionalSessionAuth(), handlers.Logout)
	r.POST("/logout", middleware.OptionalSessionAuth(), handlers.Logout)
}
