package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/zendocod/zendo/internal/config"
	"github.com/zendocod/zendo/internal/server/http/handlers"
	"github.com/zendocod/zendo/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	adminProductHandler := handlers.NewAdminProductHandler(facade)
	statsHandler := handlers.NewStatsHandler(facade)
	analyticsHandler := handlers.NewAnalyticsHandler(facade)
	relanceHandler := handlers.NewRelanceHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Get)
	api.POST("/orders", orderHandler.Create)
	api.GET("/products", productHandler.List)
	api.GET("/products/:slug", productHandler.Get)
	api.POST("/analytics/track-visit", analyticsHandler.TrackVisit)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminKeyRequired(cfg.AdminKey))
	admin.GET("/orders", adminHandler.List)
	admin.GET("/orders/:id", adminHandler.Get)
	admin.PUT("/orders/:id", adminHandler.Update)
	admin.PATCH("/orders/:id/status", adminHandler.UpdateStatus)
	admin.DELETE("/orders/:id", adminHandler.Delete)
	admin.DELETE("/orders/bulk", adminHandler.BulkDelete)
	admin.PATCH("/orders/bulk/status", adminHandler.BulkUpdateStatus)
	admin.POST("/products", adminProductHandler.Create)
	admin.PUT("/products/:slug", adminProductHandler.Update)
	admin.GET("/stats", statsHandler.Get)
	admin.GET("/relance", relanceHandler.Stats)
	admin.POST("/relance", relanceHandler.Generate)

	return engine
}
