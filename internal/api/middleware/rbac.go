package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Authorize enforces role membership. It must run after Protect: a request
// with no resolved identity is rejected with 401, a resolved identity whose
// role is not allowed with 403.
func Authorize(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "role does not have access")
			}
			return next(c)
		}
	}
}
