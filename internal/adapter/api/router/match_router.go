package router

import (
	"innovest/internal/adapter/api/handler"
	"innovest/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupMatchRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	matchHandler := handler.GetMatchHandler()

	matchGroup := e.Group("/v1/matches")
	matchGroup.Use(authMiddleware.Authenticate)

	matchGroup.GET("/recommendations", matchHandler.GetRecommendations)
	matchGroup.GET("/browse", matchHandler.Browse)
}
