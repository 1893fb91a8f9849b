package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/salesdesk/sales-api/internal/core/domain"
)

// errorResponse is the envelope of every API error.
type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler renders {"kind", "message"} for every error. Domain
// errors map by kind; internal errors are logged and their detail hidden.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, unknown routes, throttling).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Kind: kindForStatus(he.Code), Message: fmt.Sprintf("%v", he.Message)}
	}

	kind := domain.KindOf(err)
	if kind != domain.KindInternal {
		return statusForKind(kind), errorResponse{Kind: string(kind), Message: domain.MessageOf(err)}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Kind: string(domain.KindInternal), Message: "internal server error"}
}

func statusForKind(k domain.Kind) int {
	switch k {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func kindForStatus(code int) string {
	switch code {
	case http.StatusUnauthorized:
		return string(domain.KindUnauthenticated)
	case http.StatusForbidden:
		return string(domain.KindForbidden)
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return string(domain.KindNotFound)
	case http.StatusConflict:
		return string(domain.KindConflict)
	case http.StatusTooManyRequests:
		return string(domain.KindRateLimited)
	}
	if code >= 400 && code < 500 {
		return string(domain.KindBadRequest)
	}
	return string(domain.KindInternal)
}
