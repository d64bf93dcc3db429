package tests

import (
	"net/http"
	"testing"

	"github.com/aw-dashboard/dashboard-api/internal/api/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T, router *gin.Engine) {
	rr := doGet(router, "/health")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doGet(router, "/api/health")
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[dto.Response[dto.UpstreamHealthResponse]](t, rr)
	assert.Equal(t, "v0.12.3", resp.Data.Upstream.Version)
}

// TestUpstreamDown expects the ActivityWatch server to be unavailable.
func TestUpstreamDown(t *testing.T, router *gin.Engine) {
	for _, path := range []string{
		"/api/hosts",
		"/api/hosts/aw-watcher-window_workstation/metrics?start=2024-01-01&end=2024-01-02",
		"/api/activity/events",
		"/api/health",
	} {
		rr := doGet(router, path)
		assert.Equal(t, http.StatusInternalServerError, rr.Code, path)

		resp := decode[dto.ErrorResponse](t, rr)
		assert.Contains(t, resp.Detail, "503", path)
	}
}
