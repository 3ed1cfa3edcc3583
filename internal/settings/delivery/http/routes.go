package http

import (
	"github.com/labstack/echo/v4"

	"github.com/sajidbaba1/yt/internal/middleware"
	"github.com/sajidbaba1/yt/internal/settings"
)

func MapSettingRoutes(settingGroup *echo.Group, h settings.Handler, mw *middleware.MiddlewareManager) {
	settingGroup.Use(mw.AuthJWTMiddleware())
	settingGroup.GET("/google-token", h.GetGoogleToken())
	settingGroup.PUT("/google-token", h.PutGoogleToken())
}
