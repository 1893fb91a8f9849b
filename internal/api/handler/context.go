package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/sales-api/internal/api/middleware"
	"github.com/salesdesk/sales-api/internal/core/domain"
)

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}

// currentPrincipal returns the caller resolved by the Authenticate middleware.
func currentPrincipal(c echo.Context) (*domain.Principal, error) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}

func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}
	return n, nil
}

func orderNumberParam(c echo.Context) (int64, error) {
	n, err := strconv.ParseInt(c.Param("ordNum"), 10, 64)
	if err != nil || n <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "ordNum must be a positive integer")
	}
	return n, nil
}

type affectedResponse struct {
	Affected int64 `json:"affected"`
}
