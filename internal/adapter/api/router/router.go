package router

import (
	"innovest/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProfileRouter(e, authMiddleware)
	SetupConversationRouter(e, authMiddleware)
	SetupMatchRouter(e, authMiddleware)
	SetupPitchRouter(e, authMiddleware)
	SetupAssistantRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
