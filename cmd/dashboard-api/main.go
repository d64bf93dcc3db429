package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aw-dashboard/dashboard-api/internal/activity"
	"github.com/aw-dashboard/dashboard-api/internal/activitywatch"
	internalhttp "github.com/aw-dashboard/dashboard-api/internal/api/http"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var AppVersion string

func main() {
	InitConfig()

	slog.Info("ActivityWatch Dashboard API", "version", AppVersion)

	awClient := activitywatch.NewClient(config.ActivityWatch.Url, config.ActivityWatch.Timeout)
	classifier := activity.NewClassifier(
		ParseCommaSeparated(config.Classification.Productive),
		ParseCommaSeparated(config.Classification.Neutral),
	)

	services := &internalhttp.Services{
		ActivityService: activity.NewService(awClient, classifier, config.ActivityWatch.MaxConcurrentFetches),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(cors.New(internalhttp.CORSConfig(config.Http.AllowedOrigin)))
	engine.Use(gin.Recovery())
	internalhttp.SetupRoute(engine, services)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Http.Port),
		Handler: engine,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Starting HTTP server",
			"address", httpServer.Addr,
			"activitywatch_url", config.ActivityWatch.Url,
			"allowed_origin", config.Http.AllowedOrigin)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	sig := <-quit
	slog.Info("Received shutdown signal", "signal", sig)

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Shutdown complete")
}
