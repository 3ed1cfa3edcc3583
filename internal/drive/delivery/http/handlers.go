package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sajidbaba1/yt/internal/drive"
)

type driveHandler struct {
	driveUC drive.UseCase
}

func NewDriveHandler(driveUC drive.UseCase) drive.Handler {
	return &driveHandler{
		driveUC: driveUC,
	}
}

func (h *driveHandler) ListFiles() echo.HandlerFunc {
	return func(c echo.Context) error {
		pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
		list, err := h.driveUC.ListFiles(c.Request().Context(), c.QueryParam("page_token"), pageSize)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	}
}

func (h *driveHandler) GetSuggestion() echo.HandlerFunc {
	return func(c echo.Context) error {
		fileID := c.Param("file_id")
		if fileID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "file id is required"})
		}
		suggestion, err := h.driveUC.GetSuggestion(c.Request().Context(), fileID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, suggestion)
	}
}
