package handler

import (
	"errors"
	"log"
	"net/http"

	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"
	"myflix-api/internal/service"
	"myflix-api/internal/validator"
	"myflix-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user account operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// GetAllUsers godoc
// @Summary      List all users
// @Description  Retrieve all user documents, hashed Password field included
// @Tags         users
// @Produce      json
// @Success      201  {array}   models.User
// @Failure      400  {string}  string  "Error: <store error>"
// @Failure      401  {string}  string
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		log.Printf("users list failed: %v", err)
		response.StoreError(c, http.StatusBadRequest, err)
		return
	}

	// 201 on a read is the inherited contract of this endpoint.
	response.JSON(c, http.StatusCreated, users)
}

// CreateUser godoc
// @Summary      Sign up
// @Description  Validate, hash the password, and create the account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateUserRequest  true  "Signup payload"
// @Success      201      {object}  models.User
// @Failure      400      {string}  string  "<username>already exists"
// @Failure      422      {object}  map[string][]response.FieldError
// @Failure      500      {string}  string  "Error: <store error>"
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fieldErrs, ok := validator.Translate(err); ok {
			response.ValidationFailed(c, fieldErrs)
			return
		}
		response.Text(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			// Historical body format, no space before "already".
			response.Text(c, http.StatusBadRequest, req.Username+"already exists")
			return
		}
		log.Printf("user create failed: %v", err)
		response.StoreError(c, http.StatusInternalServerError, err)
		return
	}

	response.JSON(c, http.StatusCreated, user)
}

// UpdateUser godoc
// @Summary      Update profile
// @Description  Update Password, Email and/or Birthday for the addressed user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        username  path      string                    true  "Username"
// @Param        request   body      models.UpdateUserRequest  true  "Fields to update"
// @Success      200       {object}  models.User
// @Failure      401       {string}  string
// @Failure      500       {string}  string  "Error: <store error>"
// @Security     BearerAuth
// @Router       /users/{username} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	username := c.Param("username")

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Text(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), username, &req)
	h.respondUpdated(c, user, err)
}

// AddFavoriteMovie godoc
// @Summary      Add favorite movie
// @Description  Append a movie id to the user's favorites list
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        movieId   path      string  true  "Movie id (hex)"
// @Success      200       {object}  models.User
// @Failure      401       {string}  string
// @Failure      500       {string}  string  "Error: <store error>"
// @Security     BearerAuth
// @Router       /users/{username}/{movieId} [post]
func (h *UserHandler) AddFavoriteMovie(c *gin.Context) {
	username := c.Param("username")
	movieID := c.Param("movieId")

	user, err := h.service.AddFavorite(c.Request.Context(), username, movieID)
	h.respondUpdated(c, user, err)
}

// RemoveFavoriteMovie godoc
// @Summary      Remove favorite movie
// @Description  Remove a movie id from the user's favorites list
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Username"
// @Param        movieId   path      string  true  "Movie id (hex)"
// @Success      200       {object}  models.User
// @Failure      401       {string}  string
// @Failure      500       {string}  string  "Error: <store error>"
// @Security     BearerAuth
// @Router       /users/{username}/{movieId} [delete]
func (h *UserHandler) RemoveFavoriteMovie(c *gin.Context) {
	username := c.Param("username")
	movieID := c.Param("movieId")

	user, err := h.service.RemoveFavorite(c.Request.Context(), username, movieID)
	h.respondUpdated(c, user, err)
}

// DeleteUser godoc
// @Summary      Unregister
// @Description  Remove the addressed user account
// @Tags         users
// @Produce      plain
// @Param        username  path      string  true  "Username"
// @Success      200       {string}  string  "<username> was deleted."
// @Failure      400       {string}  string  "<username> was not found"
// @Failure      401       {string}  string
// @Failure      500       {string}  string  "Error: <store error>"
// @Security     BearerAuth
// @Router       /users/{username}/unregister [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")

	err := h.service.DeleteUser(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.Text(c, http.StatusBadRequest, username+" was not found")
			return
		}
		log.Printf("user delete failed: %v", err)
		response.StoreError(c, http.StatusInternalServerError, err)
		return
	}

	response.Text(c, http.StatusOK, username+" was deleted.")
}

// respondUpdated maps a user mutation result to the wire: an unknown user is
// 200 null (kept contract), any other failure is 500 text.
func (h *UserHandler) respondUpdated(c *gin.Context, user *models.User, err error) {
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.JSON(c, http.StatusOK, nil)
			return
		}
		log.Printf("user update failed: %v", err)
		response.StoreError(c, http.StatusInternalServerError, err)
		return
	}

	response.JSON(c, http.StatusOK, user)
}
