package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Titan0-08/Fitness-Web/internal/config"
	"github.com/Titan0-08/Fitness-Web/internal/database"
	"github.com/Titan0-08/Fitness-Web/internal/handlers"
	"github.com/Titan0-08/Fitness-Web/internal/identity"
	"github.com/Titan0-08/Fitness-Web/internal/middleware"
	"github.com/Titan0-08/Fitness-Web/internal/models"
	"github.com/Titan0-08/Fitness-Web/internal/routes"
	"github.com/Titan0-08/Fitness-Web/pkg/logger"
)

func main() {
	config.LoadConfig()

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	logger.Info().Str("environment", env).Msg("Starting Fitness-Web Backend...")

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database.Connect()
	database.InitRedis()

	logger.Info().Msg("Running database migrations...")
	if err := database.DB.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Recipe{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupMessage{},
	); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}
	logger.Info().Msg("Database migrations complete")

	// Identity provider collaborator for the login exchange
	handlers.IdentityVerifier = identity.NewTokenVerifier(config.AppConfig.IdentitySecret)

	r := gin.New()

	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.ErrorHandlerMiddleware())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SecurityHeaders())

	// Socket.io handshakes are chatty; keep them out of the limiter
	r.Use(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 10 && c.Request.URL.Path[:10] == "/socket.io" {
			c.Next()
			return
		}
		middleware.GeneralRateLimit()(c)
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		routes.RegisterAuthRoutes(auth)

		routes.RegisterUserRoutes(api)
		routes.RegisterBlogRoutes(api)
		routes.RegisterRecipeRoutes(api)
		routes.RegisterGroupRoutes(api)
	}

	r.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		redisStatus := "ok"

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
		}

		if database.Redis != nil {
			if _, err := database.Redis.Ping(context.Background()).Result(); err != nil {
				redisStatus = "error"
			}
		} else {
			redisStatus = "not configured"
		}

		status := "ok"
		if dbStatus != "ok" || (redisStatus != "ok" && redisStatus != "not configured") {
			status = "degraded"
		}

		c.JSON(200, gin.H{
			"status": status,
			"checks": gin.H{
				"database": dbStatus,
				"redis":    redisStatus,
			},
		})
	})

	socketServer := handlers.InitSocketServer()
	defer socketServer.Close()

	r.GET("/socket.io/*any", handlers.SocketHandler(socketServer))
	r.POST("/socket.io/*any", handlers.SocketHandler(socketServer))

	port := config.AppConfig.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Server exited")
}
