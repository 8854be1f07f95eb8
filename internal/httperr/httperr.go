package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Code    string `json:"error_code"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Message: message,
		Status:  http.StatusText(status),
		Code:    code,
	})
}

// Abort writes the error envelope and stops the handler chain.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Message: message,
		Status:  http.StatusText(status),
		Code:    code,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError writes a business error with its mapped status. It reports false
// when err is not a business error so the caller can log and fall back.
func FromError(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}
	Write(c, be.Status(), be.Code, messageFor(be))
	return true
}

var messages = map[Kind]string{
	KindInvalidArgument:    "Invalid request.",
	KindNotFound:           "Resource not found.",
	KindConflict:           "Resource already exists.",
	KindUnauthorized:       "Authentication required.",
	KindForbidden:          "Access denied.",
	KindInactiveAccount:    "Inactive user.",
	KindInvalidCredentials: "Invalid credentials.",
	KindInternalUpload:     "Could not store the uploaded images.",
}

func messageFor(be BusinessError) string {
	if m, ok := messages[be.Kind]; ok {
		return m
	}
	return "Request failed."
}
