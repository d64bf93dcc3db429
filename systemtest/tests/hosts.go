package tests

import (
	"net/http"
	"testing"

	"github.com/aw-dashboard/dashboard-api/internal/api/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHosts(t *testing.T, router *gin.Engine) {
	t.Run("lists window buckets only", func(t *testing.T) {
		rr := doGet(router, "/api/hosts")
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[dto.Response[[]dto.HostResponse]](t, rr)
		assert.True(t, resp.Success)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "aw-watcher-window_linux-workstation", resp.Data[0].ID)
		assert.Equal(t, "linux", resp.Data[0].Platform)
		assert.Equal(t, "aw-watcher-window_workstation", resp.Data[1].ID)
		assert.Equal(t, "unknown", resp.Data[1].Platform)
	})

	t.Run("get single host", func(t *testing.T) {
		rr := doGet(router, "/api/hosts/aw-watcher-window_workstation")
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[dto.Response[dto.HostResponse]](t, rr)
		assert.Equal(t, "workstation", resp.Data.Name)
	})

	t.Run("metrics for a day", func(t *testing.T) {
		rr := doGet(router, "/api/hosts/aw-watcher-window_linux-workstation/metrics?start=2024-01-01T00:00:00Z&end=2024-01-02T00:00:00Z")
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[dto.Response[dto.HostMetricsResponse]](t, rr)
		assert.Equal(t, 600.0, resp.Data.TotalTime)
		assert.Equal(t, 100.0, resp.Data.ProductiveTime)
		assert.Equal(t, 200.0, resp.Data.NeutralTime)
		assert.Equal(t, 300.0, resp.Data.DistractingTime)
		assert.InDelta(t, 16.667, resp.Data.ProductivityScore, 0.001)
	})

	t.Run("metrics outside the recorded window", func(t *testing.T) {
		rr := doGet(router, "/api/hosts/aw-watcher-window_linux-workstation/metrics?start=2023-01-01T00:00:00Z&end=2023-01-02T00:00:00Z")
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[dto.Response[dto.HostMetricsResponse]](t, rr)
		assert.Zero(t, resp.Data.TotalTime)
		assert.Zero(t, resp.Data.ProductivityScore)
	})
}
