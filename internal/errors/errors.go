package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker-api/internal/services"
)

const (
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInternal           = "INTERNAL_ERROR"
)

// APIError is the body of every error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// abort writes the error and stops the remaining handlers, so middleware
// can reject a request with a single call.
func abort(c *gin.Context, status int, code, message string, details any) {
	c.AbortWithStatusJSON(status, &APIError{Code: code, Message: message, Details: details})
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

func Unauthorized(c *gin.Context, message string) {
	abort(c, http.StatusUnauthorized, CodeUnauthorized, orDefault(message, "Authentication required"), nil)
}

func InvalidCredentials(c *gin.Context) {
	abort(c, http.StatusUnauthorized, CodeInvalidCredentials, "Please check your login credentials", nil)
}

func NotFound(c *gin.Context, message string) {
	abort(c, http.StatusNotFound, CodeNotFound, orDefault(message, "Resource not found"), nil)
}

// TaskNotFound reports a task that is absent or owned by someone else.
// Both cases produce the same body.
func TaskNotFound(c *gin.Context, taskID string) {
	NotFound(c, `Task with ID "`+taskID+`" not found`)
}

func BadRequest(c *gin.Context, message string, details any) {
	abort(c, http.StatusBadRequest, CodeInvalidInput, orDefault(message, "Invalid request"), details)
}

func Conflict(c *gin.Context, message string) {
	abort(c, http.StatusConflict, CodeConflict, orDefault(message, "Resource conflict"), nil)
}

// InternalError never carries the cause; it is logged where it happened.
func InternalError(c *gin.Context) {
	abort(c, http.StatusInternalServerError, CodeInternal, "Internal server error", nil)
}

// FromService maps an error returned by the services package onto its
// response. taskID names the task for not-found messages and may be empty.
func FromService(c *gin.Context, err error, taskID string) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		Conflict(c, "Username already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		InvalidCredentials(c)
	case errors.Is(err, services.ErrUnauthorized):
		Unauthorized(c, "")
	case errors.Is(err, services.ErrTaskNotFound):
		TaskNotFound(c, taskID)
	default:
		InternalError(c)
	}
}
