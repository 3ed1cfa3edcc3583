package jobs

import "github.com/labstack/echo/v4"

type Handler interface {
	CreateJob() echo.HandlerFunc
	CreateBulk() echo.HandlerFunc
	ListJobs() echo.HandlerFunc
	GetJobByID() echo.HandlerFunc
	UpdateJob() echo.HandlerFunc
	DeleteJob() echo.HandlerFunc
	UploadThumbnail() echo.HandlerFunc
}
