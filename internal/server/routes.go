package server

import (
	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiscope/internal/monitoring"
)

func SetupRoutes(router *gin.Engine, handler *Handler, metrics *monitoring.Metrics) {
	router.GET("/", handler.Index)
	router.POST("/analyze", handler.AnalyzePage)

	v1 := router.Group("/api/v1")
	v1.POST("/analyze", handler.AnalyzeAPI) // POST /api/v1/analyze

	router.GET("/healthz", handler.Healthz)
	router.GET("/readyz", handler.Readyz)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}
