package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sajidbaba1/yt/internal/auth"
	"github.com/sajidbaba1/yt/internal/config"
	"github.com/sajidbaba1/yt/internal/models"
	"github.com/sajidbaba1/yt/pkg/logger"
	"github.com/sajidbaba1/yt/pkg/utils"
)

type authHandler struct {
	cfg    *config.Config
	authUC auth.UseCase
	logger logger.Logger
}

func NewAuthHandler(cfg *config.Config, authUC auth.UseCase, logger logger.Logger) auth.Handler {
	return &authHandler{
		cfg:    cfg,
		authUC: authUC,
		logger: logger,
	}
}

func (h *authHandler) Register() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := &models.User{}
		if err := c.Bind(user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		createdUser, err := h.authUC.Register(c.Request().Context(), user)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		c.SetCookie(utils.CreateSessionCookie(h.cfg, createdUser.Token))
		return c.JSON(http.StatusCreated, createdUser)
	}
}

func (h *authHandler) Login() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := &models.User{}
		if err := c.Bind(user); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		loginUser, err := h.authUC.Login(c.Request().Context(), user)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		c.SetCookie(utils.CreateSessionCookie(h.cfg, loginUser.Token))
		return c.JSON(http.StatusOK, loginUser)
	}
}

func (h *authHandler) Logout() echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie := utils.CreateSessionCookie(h.cfg, "")
		cookie.MaxAge = -1
		c.SetCookie(cookie)
		return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
	}
}

func (h *authHandler) GetMe() echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := utils.GetUserFromCtx(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized access"})
		}
		return c.JSON(http.StatusOK, user)
	}
}
