package handlers

import (
	"net/http"
	"strconv"

	"airport-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty request body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// CurrentPassengerID pulls the passenger identity set by the auth
// middleware, aborting with 401 when it is missing.
func CurrentPassengerID(c *gin.Context) (int64, bool) {
	ctx, ok := middleware.GetRequestContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "passenger identity missing", nil)
		return 0, false
	}
	return int64(ctx.PassengerID), true
}

// PathID parses a numeric :id path parameter.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}
