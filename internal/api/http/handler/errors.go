package handler

import (
	"log/slog"
	"net/http"

	"github.com/aw-dashboard/dashboard-api/internal/api/http/dto"
	"github.com/aw-dashboard/dashboard-api/internal/api/http/middleware"
	"github.com/gin-gonic/gin"
)

// respondError reports every failure as a 500 carrying the error text.
func respondError(c *gin.Context, msg string, err error) {
	slog.Error(msg,
		"error", err,
		"path", c.Request.URL.Path,
		"request_id", c.GetString(middleware.RequestIDKey))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: err.Error()})
}
