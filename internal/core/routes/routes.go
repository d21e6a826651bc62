package routes

import (
	"github.com/gin-gonic/gin"

	"patrimonio/internal/core/container"
	"patrimonio/internal/middleware"
)

func RegisterPublicRoutes(router *gin.Engine, container *container.Container) {
	router.Use(middleware.RecoveryMiddleware(container.Logger))
	container.DashboardHandler.RegisterRoutes(router)
}

func RegisterUtilityRoutes(router *gin.Engine, container *container.Container) {
	router.GET("/health", middleware.HealthCheckHandler(container.Loader))
}
