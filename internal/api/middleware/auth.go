package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/sales-api/internal/core/domain"
)

// PrincipalKey is the echo.Context key holding the *domain.Principal.
const PrincipalKey = "principal"

// Authenticator resolves a bearer token to a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

// Authenticate resolves the Authorization bearer token on every request.
// A missing or invalid token, or one naming a user that no longer exists,
// leaves the request anonymous and the role gate decides. Store failures
// abort the request.
func Authenticate(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return next(c)
			}

			p, err := auth.Authenticate(c.Request().Context(), raw)
			if err != nil {
				if domain.KindOf(err) == domain.KindUnauthenticated {
					return next(c)
				}
				return err
			}

			c.Set(PrincipalKey, p)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal set by Authenticate, or nil.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(PrincipalKey).(*domain.Principal)
	return p
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	tok := strings.TrimSpace(parts[1])
	return tok, tok != ""
}
