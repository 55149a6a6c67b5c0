package delivery

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	if errors.Is(err, domain.ErrLoginRequired) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrOrderNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, domain.ErrEmptyCart) {
		return http.StatusConflict
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "not found") {
		return http.StatusNotFound
	}
	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "cannot be empty") {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// sessionID returns the session identifier resolved by the session middleware.
func sessionID(c *gin.Context) string {
	if sid, exists := c.Get("session_id"); exists {
		if s, ok := sid.(string); ok {
			return s
		}
	}
	return ""
}
