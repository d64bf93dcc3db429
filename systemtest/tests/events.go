package tests

import (
	"net/http"
	"testing"

	"github.com/aw-dashboard/dashboard-api/internal/api/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityEvents(t *testing.T, router *gin.Engine) {
	const window = "start=2024-01-01T00:00:00Z&end=2024-01-02T00:00:00Z"

	t.Run("all hosts concatenated in listing order", func(t *testing.T) {
		rr := doGet(router, "/api/activity/events?"+window)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[dto.PaginatedResponse[dto.ActivityEventResponse]](t, rr)
		require.Equal(t, 253, resp.Pagination.Total)
		require.Len(t, resp.Data, 100)
		assert.Equal(t, "aw-watcher-window_linux-workstation", resp.Data[0].HostID)
		assert.Equal(t, "productive", resp.Data[1].Data.Category)
	})

	t.Run("third page of a single host", func(t *testing.T) {
		rr := doGet(router, "/api/activity/events?host_id=aw-watcher-window_workstation&page=3&limit=100&"+window)
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[dto.PaginatedResponse[dto.ActivityEventResponse]](t, rr)
		assert.Len(t, resp.Data, 50)
		assert.Equal(t, dto.PaginationResponse{Page: 3, Limit: 100, Total: 250, TotalPages: 3}, resp.Pagination)
		assert.Equal(t, "1200", resp.Data[0].ID)
	})

	t.Run("bad page is a server error", func(t *testing.T) {
		rr := doGet(router, "/api/activity/events?page=first")
		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		resp := decode[dto.ErrorResponse](t, rr)
		assert.Contains(t, resp.Detail, "invalid page")
	})
}
