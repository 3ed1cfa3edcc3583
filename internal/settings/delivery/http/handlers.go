package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/internal/settings"
)

type settingHandler struct {
	settingUC settings.UseCase
}

func NewSettingHandler(settingUC settings.UseCase) settings.Handler {
	return &settingHandler{
		settingUC: settingUC,
	}
}

func (h *settingHandler) GetGoogleToken() echo.HandlerFunc {
	return func(c echo.Context) error {
		bundle, err := h.settingUC.GetTokenBundle(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Google account is not connected"})
		}
		return c.JSON(http.StatusOK, bundle.Redacted())
	}
}

func (h *settingHandler) PutGoogleToken() echo.HandlerFunc {
	return func(c echo.Context) error {
		bundle := &models.TokenBundle{}
		if err := c.Bind(bundle); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		if err := h.settingUC.SetTokenBundle(c.Request().Context(), bundle); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Google token saved"})
	}
}
