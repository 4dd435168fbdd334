package router

import (
	"innovest/internal/adapter/api/handler"
	"innovest/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupAssistantRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	assistantHandler := handler.GetAssistantHandler()

	assistantGroup := e.Group("/v1/assistant")
	assistantGroup.Use(authMiddleware.Authenticate)

	assistantGroup.POST("/chat", assistantHandler.Chat)
}
