// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"log"
	"net/http"

	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"
	"myflix-api/internal/service"
	"myflix-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// MovieHandler handles HTTP requests for catalog reads.
//
// Two inherited contract points live here: the list endpoint answers 201 on
// success (not 200), and single lookups that miss answer 200 with a null
// body (not 404). Both are load-bearing for existing clients.
type MovieHandler struct {
	service service.MovieServicer
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service service.MovieServicer) *MovieHandler {
	return &MovieHandler{service: service}
}

// GetAllMovies godoc
// @Summary      List all movies
// @Description  Retrieve every movie in the catalog
// @Tags         movies
// @Produce      json
// @Success      201  {array}   models.Movie
// @Failure      400  {string}  string  "Error: <store error>"
// @Failure      401  {string}  string
// @Security     BearerAuth
// @Router       /movies [get]
func (h *MovieHandler) GetAllMovies(c *gin.Context) {
	movies, err := h.service.GetAllMovies(c.Request.Context())
	if err != nil {
		log.Printf("movies list failed: %v", err)
		response.StoreError(c, http.StatusBadRequest, err)
		return
	}

	response.JSON(c, http.StatusCreated, movies)
}

// GetMovieByTitle godoc
// @Summary      Get movie by title
// @Description  Find one movie by exact title match; answers null when absent
// @Tags         movies
// @Produce      json
// @Param        title  path      string  true  "Movie title"
// @Success      200    {object}  models.Movie
// @Failure      401    {string}  string
// @Failure      500    {string}  string  "Error: <store error>"
// @Security     BearerAuth
// @Router       /movies/{title} [get]
func (h *MovieHandler) GetMovieByTitle(c *gin.Context) {
	title := c.Param("title")

	movie, err := h.service.GetMovieByTitle(c.Request.Context(), title)
	h.respondSingle(c, movie, err)
}

// GetMovieByGenre godoc
// @Summary      Get movie by genre name
// @Description  Find one movie whose embedded genre name matches; answers null when absent
// @Tags         movies
// @Produce      json
// @Param        name  path      string  true  "Genre name"
// @Success      200   {object}  models.Movie
// @Failure      401   {string}  string
// @Failure      500   {string}  string  "Error: <store error>"
// @Security     BearerAuth
// @Router       /movies/genre/{name} [get]
func (h *MovieHandler) GetMovieByGenre(c *gin.Context) {
	name := c.Param("name")

	movie, err := h.service.GetMovieByGenre(c.Request.Context(), name)
	h.respondSingle(c, movie, err)
}

// GetMovieByDirector godoc
// @Summary      Get movie by director name
// @Description  Find one movie whose embedded director name matches; answers null when absent
// @Tags         movies
// @Produce      json
// @Param        name  path      string  true  "Director name"
// @Success      200   {object}  models.Movie
// @Failure      401   {string}  string
// @Failure      500   {string}  string  "Error: <store error>"
// @Security     BearerAuth
// @Router       /movies/director/{name} [get]
func (h *MovieHandler) GetMovieByDirector(c *gin.Context) {
	name := c.Param("name")

	movie, err := h.service.GetMovieByDirector(c.Request.Context(), name)
	h.respondSingle(c, movie, err)
}

// respondSingle maps a single-movie lookup result to the wire: miss is 200
// null, store failure is 500 text.
func (h *MovieHandler) respondSingle(c *gin.Context, movie *models.Movie, err error) {
	if err != nil {
		if errors.Is(err, apperrors.ErrMovieNotFound) {
			response.JSON(c, http.StatusOK, nil)
			return
		}
		log.Printf("movie lookup failed: %v", err)
		response.StoreError(c, http.StatusInternalServerError, err)
		return
	}

	response.JSON(c, http.StatusOK, movie)
}
