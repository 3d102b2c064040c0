package response

import (
	"errors"
	"net/http"
	"time"

	"fieldserve/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorBody is the uniform failure envelope.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Timestamp: time.Now(),
		Status:    statusCode,
		Error:     http.StatusText(statusCode),
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}

// Error maps a service error to its status code and writes the envelope.
// Unrecognised errors become 500 without leaking internals.
func Error(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err) || errors.Is(err, gorm.ErrRecordNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	case apperr.IsConflict(err):
		Fail(c, http.StatusConflict, err.Error())
	case apperr.IsForbidden(err):
		Fail(c, http.StatusForbidden, err.Error())
	case apperr.IsInvalidState(err):
		Fail(c, http.StatusBadRequest, err.Error())
	default:
		var v *apperr.ValidationError
		if errors.As(err, &v) {
			Fail(c, http.StatusBadRequest, err.Error())
			return
		}
		Fail(c, http.StatusInternalServerError, "internal error")
	}
}
