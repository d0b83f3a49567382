package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/adapter/cache"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/adapter/http/handler"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/adapter/http/middleware"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/registry"
	"github.com/HafeezKhan-spec/AgriLiv-T5/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(models *registry.Registry, runtime handler.RuntimeProber, reports *cache.ReportCache, visionModelTag string, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(models, runtime)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize usecases
	diagnoseUC := usecase.NewDiagnoseUsecase(models, reports, logger)
	queryUC := usecase.NewQueryUsecase(models, logger)

	// Initialize handlers
	diagnoseHandler := handler.NewDiagnoseHandler(diagnoseUC, visionModelTag, logger)
	queryHandler := handler.NewQueryHandler(queryUC, logger)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", diagnoseHandler.Classify)

		text := v1.Group("/text")
		{
			text.POST("/query", queryHandler.Query)
		}
	}

	return router
}
