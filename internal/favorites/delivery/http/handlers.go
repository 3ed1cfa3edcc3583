package http

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajidbaba1/yt/internal/favorites"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type favoriteHandler struct {
	favoriteUC favorites.UseCase
}

func NewFavoriteHandler(favoriteUC favorites.UseCase) favorites.Handler {
	return &favoriteHandler{
		favoriteUC: favoriteUC,
	}
}

func (h *favoriteHandler) AddFavorite() echo.HandlerFunc {
	return func(c echo.Context) error {
		favorite := &models.Favorite{}
		if err := c.Bind(favorite); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		created, err := h.favoriteUC.AddFavorite(c.Request().Context(), favorite)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func (h *favoriteHandler) ListFavorites() echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		favoriteList, err := h.favoriteUC.ListFavorites(c.Request().Context(), pagination)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, favoriteList)
	}
}

func (h *favoriteHandler) DeleteFavorite() echo.HandlerFunc {
	return func(c echo.Context) error {
		sourceFileID := c.Param("file_id")
		if err := h.favoriteUC.DeleteFavorite(c.Request().Context(), sourceFileID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Favorite not found"})
			}
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Favorite removed"})
	}
}
