package http

import (
	"github.com/labstack/echo/v4"

	"github.com/sajidbaba1/yt/internal/favorites"
	"github.com/sajidbaba1/yt/internal/middleware"
)

func MapFavoriteRoutes(favoriteGroup *echo.Group, h favorites.Handler, mw *middleware.MiddlewareManager) {
	favoriteGroup.Use(mw.AuthJWTMiddleware())
	favoriteGroup.POST("", h.AddFavorite())
	favoriteGroup.GET("", h.ListFavorites())
	favoriteGroup.DELETE("/:file_id", h.DeleteFavorite())
}
