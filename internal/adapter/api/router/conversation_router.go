package router

import (
	"innovest/internal/adapter/api/handler"
	"innovest/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupConversationRouter sets up direct messaging routes (excluding WebSocket)
func SetupConversationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	conversationHandler := handler.GetConversationHandler()

	conversationGroup := e.Group("/v1/conversations")
	conversationGroup.Use(authMiddleware.Authenticate)

	conversationGroup.GET("", conversationHandler.ListConversations)
	conversationGroup.POST("", conversationHandler.CreateConversation)
	conversationGroup.GET("/:id/messages", conversationHandler.GetMessages)
	conversationGroup.POST("/:id/messages", conversationHandler.SendMessage)
	conversationGroup.PUT("/:id/read", conversationHandler.MarkRead)
}
