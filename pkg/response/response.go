// Package response provides helpers that write this API's wire formats.
//
// The surface predates any envelope convention: success bodies are the raw
// document (or array, or null), error bodies are plain text, and the signup
// route answers validation failures with an ordered errors list. The helpers
// here pin those formats in one place so handlers cannot drift.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FieldError is one validation violation, express-validator shaped.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// JSON writes a JSON body with the given status. A nil payload serializes as
// null - lookups that miss answer 200 null, never 404 (kept contract).
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Text writes a plain text body with the given status.
func Text(c *gin.Context, status int, message string) {
	c.String(status, message)
}

// StoreError surfaces a store-level failure as `Error: <raw error>` text.
// The raw message in the body is an inherited information-disclosure concern,
// kept because clients depend on the format.
func StoreError(c *gin.Context, status int, err error) {
	c.String(status, "Error: %s", err)
}

// Unauthorized rejects a request at the authentication guard.
func Unauthorized(c *gin.Context, message string) {
	c.String(http.StatusUnauthorized, message)
}

// ValidationFailed answers 422 with the ordered per-field violation list.
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}
