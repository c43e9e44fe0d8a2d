package routes

import (
	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	timeHandler *handler.TimeHandler,
	durationHandler *handler.DurationHandler,
) {
	v1 := router.Group("/v1")

	timeRoutes := v1.Group("/time")
	{
		timeRoutes.GET("/now", timeHandler.Now)
		timeRoutes.GET("/normalize", timeHandler.Normalize)
		timeRoutes.POST("/plus", timeHandler.Plus)
		timeRoutes.POST("/minus", timeHandler.Minus)
		timeRoutes.POST("/compare", timeHandler.Compare)
	}

	durationRoutes := v1.Group("/duration")
	{
		durationRoutes.GET("/normalize", durationHandler.Normalize)
		durationRoutes.POST("/add", durationHandler.Add)
		durationRoutes.POST("/subtract", durationHandler.Subtract)
		durationRoutes.POST("/compare", durationHandler.Compare)
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Request id first so the recovery and access logs can carry it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}
