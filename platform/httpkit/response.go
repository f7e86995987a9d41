// Package httpkit provides shared HTTP helpers and middleware.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"maleri_backend/platform/apperr"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// JSON writes a payload with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a payload with status 200.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error writes a standard error payload.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}

// HandleError maps a service error to an HTTP response.
// Returns true if an error was written and the handler should return.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	var domainErr *apperr.Error
	if errors.As(err, &domainErr) {
		Error(c, domainErr.HTTPStatus(), domainErr.Message, nil)
		return true
	}

	Error(c, http.StatusInternalServerError, "internal error", nil)
	return true
}
