package rest

import (
	"net/http"

	"suprss/config"
	"suprss/di"
	middleware_custom "suprss/middleware"
	"suprss/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Use(middleware_custom.RequestIDMiddleware())
	e.Use(middleware.Recover())

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))

	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/v1/health" || c.Path() == "/metrics"
		},
	}))

	e.GET("/v1/health", RestHandleHealth(container))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	authMiddleware := middleware_custom.NewAuthMiddleware(cfg)
	v1 := e.Group("/v1", authMiddleware.RequireAuth())

	feeds := v1.Group("/feeds")
	feeds.POST("", RestHandleCreateFeed(container))
	feeds.GET("/collection/:collectionId", RestHandleListCollectionFeeds(container))
	feeds.PATCH("/:id", RestHandleUpdateFeed(container))
	feeds.DELETE("/:id", RestHandleDeleteFeed(container))
	feeds.POST("/:id/refresh", RestHandleRefreshFeed(container))
	feeds.POST("/:id/schedule", RestHandleScheduleFeed(container))
	feeds.POST("/:id/unschedule", RestHandleUnscheduleFeed(container))
	feeds.POST("/reschedule-all", RestHandleRescheduleAll(container))
	feeds.GET("/:id/articles", RestHandleListFeedArticles(container))

	articles := v1.Group("/articles")
	articles.GET("", RestHandleListArticles(container))
	articles.POST("/:id/read", RestHandleMarkRead(container))
	articles.POST("/:id/favorite", RestHandleMarkFavorite(container))

	collections := v1.Group("/collections")
	collections.GET("/export", RestHandleExportCollections(container))
	collections.POST("/import", RestHandleImportCollections(container))
}

func RestHandleHealth(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
