package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "myflix-api/internal/errors"
	"myflix-api/internal/models"
	"myflix-api/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUserHandler(t *testing.T) {
	mockService := &mocks.MockUserService{}
	handler := NewUserHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestUserHandler_GetAllUsers(t *testing.T) {
	userID1 := primitive.NewObjectID()
	userID2 := primitive.NewObjectID()

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful get all users answers 201",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetAllUsersFunc = func(ctx context.Context) ([]models.User, error) {
					return []models.User{
						{ID: userID1, Username: "alice1", Email: "alice@example.com"},
						{ID: userID2, Username: "bobby2", Email: "bob@example.com"},
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var users []map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &users)
				assert.NoError(t, err)
				assert.Len(t, users, 2)
				assert.Equal(t, "alice1", users[0]["Username"])
			},
		},
		{
			name: "empty user list",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetAllUsersFunc = func(ctx context.Context) ([]models.User, error) {
					return []models.User{}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "[]", w.Body.String())
			},
		},
		{
			name: "store error answers 400 with raw error text",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetAllUsersFunc = func(ctx context.Context) ([]models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "Error: database error", w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.GET("/users", handler.GetAllUsers)

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestUserHandler_CreateUser(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful signup",
			body: models.CreateUserRequest{
				Username: "alice1",
				Password: "secret",
				Email:    "alice@example.com",
				Birthday: "1999-01-01",
			},
			mockSetup: func(m *mocks.MockUserService) {
				m.CreateUserFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return &models.User{
						ID:             userID,
						Username:       req.Username,
						Password:       "$2a$10$hashed",
						Email:          req.Email,
						Birthday:       req.Birthday,
						FavoriteMovies: []primitive.ObjectID{},
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var user map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &user)
				assert.NoError(t, err)
				assert.Equal(t, "alice1", user["Username"])
				// Hashed password stays on the wire (kept contract).
				assert.Equal(t, "$2a$10$hashed", user["Password"])
				assert.NotNil(t, user["FavoriteMovies"])
			},
		},
		{
			name: "username too short answers 422 with field errors",
			body: models.CreateUserRequest{
				Username: "abc",
				Password: "secret",
				Email:    "alice@example.com",
			},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string][]map[string]string
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Len(t, resp["errors"], 1)
				assert.Equal(t, "Username", resp["errors"][0]["param"])
				assert.Equal(t, "Username must be at least 5 characters long", resp["errors"][0]["msg"])
			},
		},
		{
			name: "non alphanumeric username answers 422",
			body: models.CreateUserRequest{
				Username: "alice!!",
				Password: "secret",
				Email:    "alice@example.com",
			},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string][]map[string]string
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, "Username contains non alphanumeric characters - not allowed", resp["errors"][0]["msg"])
			},
		},
		{
			name: "missing fields collect one error each",
			body: map[string]string{
				"Username": "alice1",
			},
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string][]map[string]string
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Len(t, resp["errors"], 2)
				assert.Equal(t, "Password is required", resp["errors"][0]["msg"])
				assert.Equal(t, "Email is required", resp["errors"][1]["msg"])
			},
		},
		{
			name:           "invalid JSON body answers 400",
			body:           "not json",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username answers 400 with historical body",
			body: models.CreateUserRequest{
				Username: "alice1",
				Password: "secret",
				Email:    "alice@example.com",
			},
			mockSetup: func(m *mocks.MockUserService) {
				m.CreateUserFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "alice1already exists", w.Body.String())
			},
		},
		{
			name: "store error answers 500",
			body: models.CreateUserRequest{
				Username: "alice1",
				Password: "secret",
				Email:    "alice@example.com",
			},
			mockSetup: func(m *mocks.MockUserService) {
				m.CreateUserFunc = func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "Error: database error", w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.POST("/users", handler.CreateUser)

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestUserHandler_UpdateUser(t *testing.T) {
	userID := primitive.NewObjectID()
	newEmail := "updated@example.com"

	tests := []struct {
		name           string
		username       string
		body           interface{}
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:     "successful update",
			username: "alice1",
			body: models.UpdateUserRequest{
				Email: &newEmail,
			},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
					return &models.User{
						ID:       userID,
						Username: username,
						Email:    *req.Email,
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var user map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &user)
				assert.NoError(t, err)
				assert.Equal(t, newEmail, user["Email"])
			},
		},
		{
			name:     "unknown user answers 200 null",
			username: "ghost",
			body: models.UpdateUserRequest{
				Email: &newEmail,
			},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "null", w.Body.String())
			},
		},
		{
			name:           "invalid JSON body",
			username:       "alice1",
			body:           "not json",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "store error answers 500",
			username: "alice1",
			body: models.UpdateUserRequest{
				Email: &newEmail,
			},
			mockSetup: func(m *mocks.MockUserService) {
				m.UpdateUserFunc = func(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "Error: database error", w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.PUT("/users/:username", handler.UpdateUser)

			var body []byte
			switch v := tt.body.(type) {
			case string:
				body = []byte(v)
			default:
				body, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.username, bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestUserHandler_AddFavoriteMovie(t *testing.T) {
	userID := primitive.NewObjectID()
	movieID := primitive.NewObjectID()

	tests := []struct {
		name           string
		username       string
		movieID        string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:     "successful add favorite",
			username: "alice1",
			movieID:  movieID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.AddFavoriteFunc = func(ctx context.Context, username, id string) (*models.User, error) {
					return &models.User{
						ID:             userID,
						Username:       username,
						FavoriteMovies: []primitive.ObjectID{movieID},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var user map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &user)
				assert.NoError(t, err)
				favorites := user["FavoriteMovies"].([]interface{})
				assert.Len(t, favorites, 1)
				assert.Equal(t, movieID.Hex(), favorites[0])
			},
		},
		{
			name:     "unknown user answers 200 null",
			username: "ghost",
			movieID:  movieID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.AddFavoriteFunc = func(ctx context.Context, username, id string) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "null", w.Body.String())
			},
		},
		{
			name:     "malformed movie id answers 500",
			username: "alice1",
			movieID:  "not-a-hex-id",
			mockSetup: func(m *mocks.MockUserService) {
				m.AddFavoriteFunc = func(ctx context.Context, username, id string) (*models.User, error) {
					return nil, errors.New("the provided hex string is not a valid ObjectID")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.POST("/users/:username/:movieId", handler.AddFavoriteMovie)

			req := httptest.NewRequest(http.MethodPost, "/users/"+tt.username+"/"+tt.movieID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestUserHandler_RemoveFavoriteMovie(t *testing.T) {
	userID := primitive.NewObjectID()
	movieID := primitive.NewObjectID()

	tests := []struct {
		name           string
		username       string
		movieID        string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:     "successful remove favorite",
			username: "alice1",
			movieID:  movieID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.RemoveFavoriteFunc = func(ctx context.Context, username, id string) (*models.User, error) {
					return &models.User{
						ID:             userID,
						Username:       username,
						FavoriteMovies: []primitive.ObjectID{},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var user map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &user)
				assert.NoError(t, err)
				assert.Len(t, user["FavoriteMovies"], 0)
			},
		},
		{
			name:     "unknown user answers 200 null",
			username: "ghost",
			movieID:  movieID.Hex(),
			mockSetup: func(m *mocks.MockUserService) {
				m.RemoveFavoriteFunc = func(ctx context.Context, username, id string) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "null", w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.DELETE("/users/:username/:movieId", handler.RemoveFavoriteMovie)

			req := httptest.NewRequest(http.MethodDelete, "/users/"+tt.username+"/"+tt.movieID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:     "successful delete",
			username: "alice1",
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, username string) error {
					return nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "alice1 was deleted.", w.Body.String())
			},
		},
		{
			name:     "unknown user answers 400",
			username: "ghost",
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, username string) error {
					return apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "ghost was not found", w.Body.String())
			},
		},
		{
			name:     "store error answers 500",
			username: "alice1",
			mockSetup: func(m *mocks.MockUserService) {
				m.DeleteUserFunc = func(ctx context.Context, username string) error {
					return errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "Error: database error", w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			handler := NewUserHandler(mockService)

			router := gin.New()
			router.DELETE("/users/:username/unregister", handler.DeleteUser)

			req := httptest.NewRequest(http.MethodDelete, "/users/"+tt.username+"/unregister", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
