package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myflix-api/internal/cache"
	"myflix-api/internal/config"
	"myflix-api/internal/database"
	"myflix-api/internal/handler"
	"myflix-api/internal/repository"
	"myflix-api/internal/router"
	"myflix-api/internal/service"
	"myflix-api/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           myFlix API
// @version         1.0
// @description     A REST API serving a movie catalog and user accounts, backed by MongoDB with a Redis read cache.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis cache for catalog reads
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	movieRepo := repository.NewMovieRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)

	// Service layer
	movieService := service.NewMovieService(movieRepo, redisCache)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(userRepo, jwtManager)

	// Handler layer
	movieHandler := handler.NewMovieHandler(movieService)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:  authHandler,
		MovieHandler: movieHandler,
		UserHandler:  userHandler,
		JWTManager:   jwtManager,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
