package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/salesdesk/sales-api/internal/api/metrics"
	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/rbac"
)

// RequireRoles gates a route on the principal holding any of roles.
// Admin always passes; an empty role list lets everyone through.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	required := append([]string(nil), roles...)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := rbac.Authorize(PrincipalFrom(c), required)
			if len(required) > 0 {
				metrics.AuthzDecisionsTotal.WithLabelValues(c.Path(), decision(err)).Inc()
			}
			if err != nil {
				return err
			}
			return next(c)
		}
	}
}

func decision(err error) string {
	switch {
	case err == nil:
		return "allow"
	case domain.KindOf(err) == domain.KindUnauthenticated:
		return "unauthenticated"
	default:
		return "deny"
	}
}
