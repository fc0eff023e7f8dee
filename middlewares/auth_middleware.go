package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MriyaDevelopment/pumba-server/database"
	"github.com/MriyaDevelopment/pumba-server/models"
)

const userKey = "auth.user"

// ExtractToken strips the 7-character "Bearer " prefix and returns the raw
// api_token. An absent or short header yields an empty token, which never
// matches a user.
func ExtractToken(c echo.Context) string {
	h := c.Request().Header.Get("Authorization")
	if len(h) < 7 {
		return ""
	}
	return h[7:]
}

// RequireToken resolves the bearer token to a user and attaches it to the
// context. The token is a permanent opaque credential compared against the
// api_token column; there is nothing to verify beyond the lookup.
// notFound is the message for the 401 envelope, it differs per route group.
func RequireToken(notFound string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ExtractToken(c)

			var user models.User
			err := database.DB.Where("api_token = ?", token).First(&user).Error
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return c.JSON(http.StatusUnauthorized, echo.Map{
						"result": "error",
						"error":  notFound,
					})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{
					"result": "error",
					"error":  "Internal server error",
				})
			}

			c.Set(userKey, &user)
			return next(c)
		}
	}
}

// CurrentUser returns the user attached by RequireToken.
func CurrentUser(c echo.Context) *models.User {
	u, _ := c.Get(userKey).(*models.User)
	return u
}
