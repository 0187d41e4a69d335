package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/plazaops/property-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Where the original
	// contract picks an unconventional status (non-owner tenant access is
	// 401, duplicate vacant-shop numbers are 400) that choice is preserved.
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, domain.ErrUserExists.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "no account found with that email"
	case errors.Is(err, domain.ErrResetTokenInvalid):
		return http.StatusBadRequest, domain.ErrResetTokenInvalid.Error()
	case errors.Is(err, domain.ErrResetCooldown):
		return http.StatusTooManyRequests, domain.ErrResetCooldown.Error()
	case errors.Is(err, domain.ErrMailDelivery):
		return http.StatusBadGateway, domain.ErrMailDelivery.Error()
	case errors.Is(err, domain.ErrTenantNotFound):
		return http.StatusNotFound, domain.ErrTenantNotFound.Error()
	case errors.Is(err, domain.ErrNotTenantOwner):
		return http.StatusUnauthorized, domain.ErrNotTenantOwner.Error()
	case errors.Is(err, domain.ErrShopNumberTaken):
		return http.StatusConflict, domain.ErrShopNumberTaken.Error()
	case errors.Is(err, domain.ErrVacantShopNotFound):
		return http.StatusNotFound, domain.ErrVacantShopNotFound.Error()
	case errors.Is(err, domain.ErrVacantShopExists):
		return http.StatusBadRequest, domain.ErrVacantShopExists.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
