package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireUID trusts a uid set by an authenticating proxy in the X-User-Id header or
// the uid cookie and answers 401 without one. When disabled it passes through and
// DevLogin supplies the uid.
func RequireUID(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return next(c)
			}
			uid := c.Request().Header.Get(UIDHeader)
			if uid == "" {
				if ck, err := c.Cookie(UIDCookie); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing uid"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
