package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/aw-dashboard/dashboard-api/internal/activity"
	"github.com/aw-dashboard/dashboard-api/internal/api/http/dto"
	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityService *activity.Service
}

func NewActivityHandler(activityService *activity.Service) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListEvents returns a page of window events for one host or for all hosts
// GET /api/activity/events?host_id=&start=&end=&page=1&limit=100
func (h *ActivityHandler) ListEvents(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(activity.DefaultPage)))
	if err != nil {
		respondError(c, "Invalid page parameter", fmt.Errorf("invalid page: %w", err))
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(activity.DefaultLimit)))
	if err != nil {
		respondError(c, "Invalid limit parameter", fmt.Errorf("invalid limit: %w", err))
		return
	}

	// The dashboard client sends hostId; host_id is the documented name.
	hostID := c.Query("host_id")
	if hostID == "" {
		hostID = c.Query("hostId")
	}

	result, err := h.activityService.ListEvents(c.Request.Context(), activity.EventQuery{
		HostID: hostID,
		Start:  c.Query("start"),
		End:    c.Query("end"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, "Failed to list activity events", err)
		return
	}

	events := make([]dto.ActivityEventResponse, len(result.Events))
	for i, e := range result.Events {
		events[i] = dto.ActivityEventResponse{
			ID:        e.ID,
			HostID:    e.HostID,
			Timestamp: isoformat(e.Timestamp),
			Duration:  e.Duration,
			Type:      e.Type,
			Data: dto.ActivityEventData{
				App:      e.App,
				Title:    e.Title,
				Category: string(e.Category),
			},
		}
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse[dto.ActivityEventResponse]{
		Data:    events,
		Success: true,
		Pagination: dto.PaginationResponse{
			Page:       result.Pagination.Page,
			Limit:      result.Pagination.Limit,
			Total:      result.Pagination.Total,
			TotalPages: result.Pagination.TotalPages,
		},
	})
}
