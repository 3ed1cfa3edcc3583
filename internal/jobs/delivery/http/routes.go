package http

import (
	"github.com/labstack/echo/v4"

	"github.com/sajidbaba1/yt/internal/jobs"
	"github.com/sajidbaba1/yt/internal/middleware"
)

func MapJobRoutes(jobGroup *echo.Group, h jobs.Handler, mw *middleware.MiddlewareManager) {
	jobGroup.Use(mw.AuthJWTMiddleware())
	jobGroup.POST("", h.CreateJob())
	jobGroup.POST("/bulk", h.CreateBulk())
	jobGroup.GET("", h.ListJobs())
	jobGroup.GET("/:job_id", h.GetJobByID())
	jobGroup.PUT("/:job_id", h.UpdateJob())
	jobGroup.DELETE("/:job_id", h.DeleteJob())
	jobGroup.POST("/:job_id/thumbnail", h.UploadThumbnail())
}
