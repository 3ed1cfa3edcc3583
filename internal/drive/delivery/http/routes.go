package http

import (
	"github.com/labstack/echo/v4"

	"github.com/sajidbaba1/yt/internal/drive"
	"github.com/sajidbaba1/yt/internal/middleware"
)

func MapDriveRoutes(driveGroup *echo.Group, h drive.Handler, mw *middleware.MiddlewareManager) {
	driveGroup.Use(mw.AuthJWTMiddleware())
	driveGroup.GET("/files", h.ListFiles())
	driveGroup.GET("/files/:file_id/suggestion", h.GetSuggestion())
}
