// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "myflix-api/swagger" // Import generated swagger docs

	"myflix-api/internal/handler"
	"myflix-api/internal/middleware"
	"myflix-api/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler  *handler.AuthHandler
	MovieHandler *handler.MovieHandler
	UserHandler  *handler.UserHandler
	JWTManager   auth.TokenManager

	// PublicDir holds the unauthenticated static assets (documentation page).
	// Defaults to ./public when empty.
	PublicDir string
}

// Setup creates and configures the Gin router.
//
// Everything except the welcome page, the documentation page, signup and
// login sits behind the bearer-token guard.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	publicDir := cfg.PublicDir
	if publicDir == "" {
		publicDir = "./public"
	}

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to myFlix!")
	})
	r.StaticFile("/documentation", publicDir+"/documentation.html")
	r.POST("/login", cfg.AuthHandler.Login)
	r.POST("/users", cfg.UserHandler.CreateUser)

	authGuard := middleware.Auth(cfg.JWTManager)

	// Movie routes (protected, read-only)
	movies := r.Group("/movies")
	movies.Use(authGuard)
	{
		movies.GET("", cfg.MovieHandler.GetAllMovies)
		movies.GET("/:title", cfg.MovieHandler.GetMovieByTitle)
		movies.GET("/genre/:name", cfg.MovieHandler.GetMovieByGenre)
		movies.GET("/director/:name", cfg.MovieHandler.GetMovieByDirector)
	}

	// User routes (protected; signup above is the one public write)
	users := r.Group("/users")
	users.Use(authGuard)
	{
		users.GET("", cfg.UserHandler.GetAllUsers)
		users.PUT("/:username", cfg.UserHandler.UpdateUser)
		users.POST("/:username/:movieId", cfg.UserHandler.AddFavoriteMovie)
		users.DELETE("/:username/unregister", cfg.UserHandler.DeleteUser)
		users.DELETE("/:username/:movieId", cfg.UserHandler.RemoveFavoriteMovie)
	}

	return r
}
