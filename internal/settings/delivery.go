package settings

import "github.com/labstack/echo/v4"

type Handler interface {
	GetGoogleToken() echo.HandlerFunc
	PutGoogleToken() echo.HandlerFunc
}
