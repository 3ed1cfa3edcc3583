package http

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sajidbaba1/yt/internal/jobs"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/utils"
)

const maxThumbnailSize = 2 << 20 // YouTube caps custom thumbnails at 2MB

type jobHandler struct {
	jobUC jobs.UseCase
}

func NewJobHandler(jobUC jobs.UseCase) jobs.Handler {
	return &jobHandler{
		jobUC: jobUC,
	}
}

func (h *jobHandler) CreateJob() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.JobCreateInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		job, err := h.jobUC.CreateJob(c.Request().Context(), input)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, job)
	}
}

func (h *jobHandler) CreateBulk() echo.HandlerFunc {
	return func(c echo.Context) error {
		input := &models.BulkJobInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		created, err := h.jobUC.CreateBulk(c.Request().Context(), input)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]interface{}{"jobs": created, "count": len(created)})
	}
}

func (h *jobHandler) ListJobs() echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		jobList, err := h.jobUC.ListJobs(c.Request().Context(), c.QueryParam("status"), pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, jobList)
	}
}

func (h *jobHandler) GetJobByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		job, err := h.jobUC.GetJob(c.Request().Context(), jobID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, job)
	}
}

func (h *jobHandler) UpdateJob() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		input := &models.JobUpdateInput{}
		if err := c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		job, err := h.jobUC.UpdateJob(c.Request().Context(), jobID, input)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.JSON(http.StatusConflict, map[string]string{"error": "Only pending jobs can be updated"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, job)
	}
}

func (h *jobHandler) DeleteJob() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		if err := h.jobUC.DeleteJob(c.Request().Context(), jobID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.JSON(http.StatusConflict, map[string]string{"error": "Only pending jobs can be deleted"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Job deleted successfully"})
	}
}

func (h *jobHandler) UploadThumbnail() echo.HandlerFunc {
	return func(c echo.Context) error {
		jobID, err := uuid.Parse(c.Param("job_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid job id"})
		}
		fileHeader, err := c.FormFile("thumbnail")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "thumbnail file is required"})
		}
		if fileHeader.Size > maxThumbnailSize {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "thumbnail exceeds 2MB"})
		}
		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "failed to read thumbnail"})
		}
		defer file.Close()
		contentType := fileHeader.Header.Get("Content-Type")
		job, err := h.jobUC.AttachThumbnail(c.Request().Context(), jobID, contentType, file)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, job)
	}
}
