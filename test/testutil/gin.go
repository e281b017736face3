// Package testutil provides shared helpers for HTTP handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupRouter creates a Gin router in test mode.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func marshalBody(t *testing.T, body interface{}) *bytes.Buffer {
	t.Helper()

	if body == nil {
		return bytes.NewBuffer(nil)
	}
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewBuffer(jsonBody)
}

// MakeRequest executes a test HTTP request against the router.
func MakeRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, marshalBody(t, body))
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// MakeAuthRequest executes a test HTTP request carrying a bearer token.
func MakeAuthRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, marshalBody(t, body))
	require.NoError(t, err)

	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// ParseResponse parses a JSON response body into target.
func ParseResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	err := json.Unmarshal(w.Body.Bytes(), target)
	require.NoError(t, err)
}

// SetUsername stores a username in the Gin context the way the auth guard
// does, simulating an authenticated request.
func SetUsername(c *gin.Context, username string) {
	c.Set("username", username)
}

// CreateTestContext creates a Gin context for testing handlers directly.
func CreateTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}
