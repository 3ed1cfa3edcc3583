package drive

import "github.com/labstack/echo/v4"

type Handler interface {
	ListFiles() echo.HandlerFunc
	GetSuggestion() echo.HandlerFunc
}
