package handler

import (
	"net/http"
	"time"

	"github.com/aw-dashboard/dashboard-api/internal/activity"
	"github.com/aw-dashboard/dashboard-api/internal/api/http/dto"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	activityService *activity.Service
}

func NewHealthHandler(activityService *activity.Service) *HealthHandler {
	return &HealthHandler{activityService: activityService}
}

func (h *HealthHandler) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Upstream checks that the ActivityWatch server answers.
// GET /api/health
func (h *HealthHandler) Upstream(c *gin.Context) {
	info, err := h.activityService.Status(c.Request.Context())
	if err != nil {
		respondError(c, "Upstream health check failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.UpstreamHealthResponse{
		Status:    "ok",
		Timestamp: isoformat(time.Now().UTC()),
		Upstream: dto.UpstreamStatus{
			Hostname: info.Hostname,
			Version:  info.Version,
			Testing:  info.Testing,
		},
	}))
}
