package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plazaops/property-system/internal/core/domain"
)

// ctxUser extracts the identity injected by the Protect middleware. Its
// absence means the route was wired without the middleware; fail closed.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
