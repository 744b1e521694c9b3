package delivery

import (
	"errors"
	"net/http"

	"github.com/nickey-1/cd0037-API-Development-and-Documentation-project/internal/domain"

	"github.com/gin-gonic/gin"
)

// APIError is the uniform error body shared by every failure status.
type APIError struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func errorMessage(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusMethodNotAllowed:
		return "method not allowed"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	default:
		return "server error"
	}
}

func ErrorResponse(c *gin.Context, statusCode int) {
	c.JSON(statusCode, APIError{
		Success: false,
		Error:   statusCode,
		Message: errorMessage(statusCode),
	})
}

// mapErrorToStatus is the default mapping from use-case sentinels to HTTP
// statuses. Routes with route-specific mappings (the by-category 400, the
// mutation 422s, the quiz catch-all 400) override it in their handlers.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
