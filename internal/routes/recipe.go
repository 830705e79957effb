package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Titan0-08/Fitness-Web/internal/handlers"
	"github.com/Titan0-08/Fitness-Web/internal/middleware"
	"github.com/Titan0-08/Fitness-Web/internal/models"
)

func RegisterRecipeRoutes(r gin.IRouter) {
	r.GET("/recipes", handlers.GetRecipes)
	r.GET("/recipe/:id", middleware.OptionalSessionAuth(), handlers.GetRecipe)

	admin := r.Group("/admin")
	admin.Use(middleware.SessionAuth(), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/recipes", handlers.GetAdminRecipes)
		admin.POST("/recipes", handlers.CreateRecipe)
		admin.PUT("/recipes/:id", handlers.UpdateRecipe)
		admin.DELETE("/recipes/:id", handlers.DeleteRecipe)
	}
}
