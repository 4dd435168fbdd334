package router

import (
	"innovest/internal/adapter/api/handler"
	"innovest/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPitchRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	pitchHandler := handler.GetPitchHandler()

	pitchGroup := e.Group("/v1/pitches")
	pitchGroup.Use(authMiddleware.Authenticate)

	pitchGroup.POST("", pitchHandler.CreatePitch)
	pitchGroup.GET("", pitchHandler.ListPitches)
	pitchGroup.GET("/:id", pitchHandler.GetPitch)
	pitchGroup.POST("/:id/interest", pitchHandler.RegisterInterest)
}
