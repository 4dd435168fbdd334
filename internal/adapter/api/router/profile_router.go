package router

import (
	"innovest/internal/adapter/api/handler"
	"innovest/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupProfileRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	profileHandler := handler.GetProfileHandler()

	profileGroup := e.Group("/v1/profiles")
	profileGroup.Use(authMiddleware.Authenticate)

	profileGroup.GET("/me", profileHandler.GetMe)
	profileGroup.PUT("/me/investor-preferences", profileHandler.SaveInvestorPreferences)
	profileGroup.PUT("/me/company", profileHandler.SaveFounderCompany)
}
