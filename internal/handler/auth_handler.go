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

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      Log in
// @Description  Exchange username and password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "Credentials"
// @Success      200      {object}  models.LoginResponse
// @Failure      400      {object}  map[string]string
// @Failure      500      {string}  string  "Error: <store error>"
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Text(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			response.JSON(c, http.StatusBadRequest, gin.H{"message": apperrors.ErrInvalidCredentials.Error()})
			return
		}
		log.Printf("login failed: %v", err)
		response.StoreError(c, http.StatusInternalServerError, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}
