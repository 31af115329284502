package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the envelope every failed request carries. Business rule
// failures always surface as 400s, auth failures as 401s, and anything
// unexpected as the one fixed 500 below.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "internal_error", "Internal server error.")
}
