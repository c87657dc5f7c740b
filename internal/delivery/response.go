package delivery

import (
	"errors"
	"net/http"
	"order_api/internal/domain"
	"strings"

	"github.com/gin-gonic/gin"
)

type errorBody struct {
	Error string `json:"error"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, errorBody{Error: message})
}

func mapErrorToStatus(err error) int {
	var invalidRef *domain.InvalidReferenceError
	var insufficientStock *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &invalidRef), errors.As(err, &insufficientStock):
		return http.StatusBadRequest
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "referenced by") {
		return http.StatusConflict
	}
	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "cannot be empty") ||
		strings.Contains(errMsg, "must be") || strings.Contains(errMsg, "cannot be negative") ||
		strings.Contains(errMsg, "at least one") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RespondError maps a use case error onto the wire: 404 with an empty body
// for normal absence, otherwise the mapped status with an error message.
func RespondError(c *gin.Context, err error) {
	statusCode := mapErrorToStatus(err)
	if statusCode == http.StatusNotFound {
		c.Status(http.StatusNotFound)
		return
	}
	ErrorResponse(c, statusCode, err.Error())
}
