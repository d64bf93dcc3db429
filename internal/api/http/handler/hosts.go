package handler

import (
	"net/http"

	"github.com/aw-dashboard/dashboard-api/internal/activity"
	"github.com/aw-dashboard/dashboard-api/internal/api/http/dto"
	"github.com/gin-gonic/gin"
)

type HostsHandler struct {
	activityService *activity.Service
}

func NewHostsHandler(activityService *activity.Service) *HostsHandler {
	return &HostsHandler{activityService: activityService}
}

// ListHosts returns every host that has a window-focus bucket
// GET /api/hosts
func (h *HostsHandler) ListHosts(c *gin.Context) {
	hosts, err := h.activityService.ListHosts(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list hosts", err)
		return
	}

	responses := make([]dto.HostResponse, len(hosts))
	for i, host := range hosts {
		responses[i] = toHostResponse(host)
	}

	c.JSON(http.StatusOK, dto.OK(responses))
}

// GetHost returns a single host by bucket id
// GET /api/hosts/:host_id
func (h *HostsHandler) GetHost(c *gin.Context) {
	host, err := h.activityService.GetHost(c.Request.Context(), c.Param("host_id"))
	if err != nil {
		respondError(c, "Failed to get host", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(toHostResponse(*host)))
}

// GetHostMetrics aggregates a host's activity over [start, end]
// GET /api/hosts/:host_id/metrics?start=&end=
func (h *HostsHandler) GetHostMetrics(c *gin.Context) {
	hostID := c.Param("host_id")

	m, err := h.activityService.HostMetrics(c.Request.Context(), hostID, c.Query("start"), c.Query("end"))
	if err != nil {
		respondError(c, "Failed to compute host metrics", err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.HostMetricsResponse{
		HostID:            m.HostID,
		Period:            m.Period,
		TotalTime:         m.TotalTime,
		ActiveTime:        m.ActiveTime,
		IdleTime:          m.IdleTime,
		ProductiveTime:    m.ProductiveTime,
		NeutralTime:       m.NeutralTime,
		DistractingTime:   m.DistractingTime,
		AFKTime:           m.AFKTime,
		WorkingHours:      m.WorkingHours,
		Overtime:          m.Overtime,
		ProductivityScore: m.ProductivityScore,
		Applications:      []dto.ApplicationUsage{},
		Websites:          []dto.WebsiteUsage{},
		ActivityHeatmap:   []dto.ActivityHeatmapEntry{},
		PeakHours:         []int{},
		DowntimeEvents:    []dto.DowntimeEvent{},
	}))
}

func toHostResponse(host activity.Host) dto.HostResponse {
	return dto.HostResponse{
		ID:       host.ID,
		Name:     host.Name,
		Hostname: host.Hostname,
		Platform: host.Platform,
		LastSeen: isoformat(host.LastSeen),
		IsOnline: host.IsOnline,
		Version:  host.Version,
		Timezone: host.Timezone,
	}
}
