package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrorBody is the wire format for failures: {"error": "<message>"} with an
// optional field-keyed details map for validation errors.
type ErrorBody struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ValidationError renders a 400 with the per-field error map produced by
// ozzo-validation.
func ValidationError(c *gin.Context, details interface{}) {
	c.JSON(http.StatusBadRequest, ErrorBody{
		Error:   "validation failed",
		Details: details,
	})
}

// HandleError renders validation errors as a field-keyed 400 and everything
// else as {"error": message} with the status the domain mapped for it.
func HandleError(c *gin.Context, statusCode int, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		ValidationError(c, verrs)
		return
	}
	Error(c, statusCode, err.Error())
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
