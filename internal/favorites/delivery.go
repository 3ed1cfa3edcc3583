package favorites

import "github.com/labstack/echo/v4"

type Handler interface {
	AddFavorite() echo.HandlerFunc
	ListFavorites() echo.HandlerFunc
	DeleteFavorite() echo.HandlerFunc
}
