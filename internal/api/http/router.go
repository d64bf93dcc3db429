package http

import (
	"github.com/aw-dashboard/dashboard-api/internal/activity"
	"github.com/aw-dashboard/dashboard-api/internal/api/http/handler"
	"github.com/aw-dashboard/dashboard-api/internal/api/http/middleware"
	"github.com/gin-gonic/gin"
)

type Services struct {
	ActivityService *activity.Service
}

func SetupRoute(engine *gin.Engine, srvs *Services) {
	engine.Use(middleware.RequestLogger())

	healthHandler := handler.NewHealthHandler(srvs.ActivityService)
	engine.GET("/health", healthHandler.Check)

	if srvs.ActivityService == nil {
		return
	}

	hostsHandler := handler.NewHostsHandler(srvs.ActivityService)
	activityHandler := handler.NewActivityHandler(srvs.ActivityService)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Upstream)
	api.GET("/hosts", hostsHandler.ListHosts)
	api.GET("/hosts/:host_id", hostsHandler.GetHost)
	api.GET("/hosts/:host_id/metrics", hostsHandler.GetHostMetrics)
	api.GET("/activity/events", activityHandler.ListEvents)
}
