package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sajidbaba1/yt/pkg/utils"
)

func (mw *MiddlewareManager) AuthJWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := ""

			bearerHeader := c.Request().Header.Get("Authorization")
			if bearerHeader != "" {
				headerParts := strings.Split(bearerHeader, " ")
				if len(headerParts) != 2 {
					mw.logger.Errorf("auth middleware: malformed bearer header")
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
				}
				tokenString = headerParts[1]
			} else {
				cookie, err := c.Cookie(mw.cfg.Cookie.Name)
				if err != nil {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
				}
				tokenString = cookie.Value
			}

			claims, err := utils.ValidateToken(tokenString, mw.cfg.Server.JwtSecretKey)
			if err != nil {
				mw.logger.Errorf("auth middleware: validateToken: %v", err)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			user, err := mw.authUC.GetByID(c.Request().Context(), userID)
			if err != nil {
				mw.logger.Errorf("auth middleware: GetByID: %v", err)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			c.Set("user", user)
			ctx := context.WithValue(c.Request().Context(), utils.UserCtxKey{}, user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
