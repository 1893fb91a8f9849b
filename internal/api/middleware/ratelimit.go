package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/salesdesk/sales-api/internal/api/metrics"
	redisstore "github.com/salesdesk/sales-api/internal/infrastructure/db/redis"
)

// Limiter records a hit for key.
type Limiter interface {
	Allow(ctx context.Context, key string) (redisstore.Decision, error)
}

// RateLimit throttles requests per client IP within scope. When the
// limiter backend fails the request is let through and a warning logged.
func RateLimit(l Limiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, err := l.Allow(c.Request().Context(), scope+":"+c.RealIP())
			if err != nil {
				metrics.RateLimitErrorsTotal.Inc()
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(d.Remaining, 10))
			if !d.Allowed {
				metrics.RateLimitedTotal.WithLabelValues(scope).Inc()
				secs := int(d.RetryAfter.Seconds())
				if secs < 1 {
					secs = 1
				}
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(secs))
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
