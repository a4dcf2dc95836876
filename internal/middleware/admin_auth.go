package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminAPIKeyHeader is the shared-secret header guarding admin routes.
const AdminAPIKeyHeader = "X-Admin-API-Key"

// AdminAuthMiddleware rejects any request whose admin key header is missing
// or does not match the configured secret. The key is injected from config;
// the comparison is constant-time. Rejected requests never reach a handler.
func AdminAuthMiddleware(adminKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(AdminAPIKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(adminKey)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized)
			}
			return next(c)
		}
	}
}
