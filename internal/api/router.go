package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/salesdesk/sales-api/docs"
	"github.com/salesdesk/sales-api/internal/api/handler"
	"github.com/salesdesk/sales-api/internal/api/middleware"
	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

// Deps are the services the router wires into handlers.
type Deps struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Agents    ports.AgentService
	Customers ports.CustomerService
	Orders    ports.OrderService

	// LoginLimiter throttles login and signup. Nil disables throttling.
	LoginLimiter middleware.Limiter
	Checks       map[string]handler.Checker
	Logger       zerolog.Logger
	// Registerer receives the HTTP request metrics. Nil means the default registry.
	Registerer prometheus.Registerer
}

// route is one API endpoint with its declared role requirement.
// An empty Roles list means the route is open.
type route struct {
	Method  string
	Path    string
	Roles   []string
	Handler echo.HandlerFunc
	Extra   []echo.MiddlewareFunc
}

var (
	anyRole         = []string{domain.RoleAdmin, domain.RoleAgent, domain.RoleCustomer, domain.RoleGuest}
	agentOnly       = []string{domain.RoleAgent}
	customerOnly    = []string{domain.RoleCustomer}
	agentOrCustomer = []string{domain.RoleAgent, domain.RoleCustomer}
	adminOnly       = []string{domain.RoleAdmin}
)

func routes(d Deps) []route {
	auth := handler.NewAuthHandler(d.Auth)
	users := handler.NewUserHandler(d.Users)
	agents := handler.NewAgentHandler(d.Agents)
	customers := handler.NewCustomerHandler(d.Customers)
	orders := handler.NewOrderHandler(d.Orders)

	var throttle []echo.MiddlewareFunc
	if d.LoginLimiter != nil {
		throttle = append(throttle, middleware.RateLimit(d.LoginLimiter, "auth", d.Logger))
	}

	return []route{
		{http.MethodPost, "/auth/login", nil, auth.Login, throttle},
		{http.MethodPost, "/auth/signup", nil, auth.Signup, throttle},

		{http.MethodPost, "/users/assign-roles", adminOnly, users.AssignRoles, nil},
		{http.MethodGet, "/users/me", anyRole, users.Me, nil},

		{http.MethodGet, "/agents", agentOnly, agents.List, nil},
		{http.MethodPost, "/agents", agentOnly, agents.Create, nil},
		{http.MethodGet, "/agents/:code", agentOnly, agents.Get, nil},
		{http.MethodPatch, "/agents/:code", agentOnly, agents.Update, nil},
		{http.MethodDelete, "/agents/:code", agentOnly, agents.Delete, nil},

		{http.MethodGet, "/customers", agentOnly, customers.List, nil},
		{http.MethodPost, "/customers", agentOnly, customers.Create, nil},
		{http.MethodGet, "/customers/:code", agentOnly, customers.Get, nil},
		{http.MethodPatch, "/customers/:code", agentOnly, customers.Update, nil},
		{http.MethodDelete, "/customers/:code", agentOnly, customers.Delete, nil},

		{http.MethodGet, "/orders/total-amount-by-customer", agentOrCustomer, orders.TotalByCustomer, nil},
		{http.MethodGet, "/orders/total-amount-by-agent", agentOnly, orders.TotalByAgent, nil},
		{http.MethodGet, "/orders/total-amount-by-country", agentOnly, orders.TotalByCountry, nil},
		{http.MethodGet, "/orders", agentOnly, orders.List, nil},
		{http.MethodPost, "/orders", customerOnly, orders.Create, nil},
		{http.MethodGet, "/orders/:ordNum", agentOrCustomer, orders.Get, nil},
		{http.MethodPatch, "/orders/:ordNum", customerOnly, orders.Update, nil},
		{http.MethodDelete, "/orders/:ordNum", customerOnly, orders.Delete, nil},
	}
}

// NewRouter builds the Echo instance with every route registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(d.Logger))
	reg := d.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "sales",
		Registerer: reg,
	}))

	// --- Operational endpoints (no auth) ---
	health := handler.NewHealthHandler(d.Checks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API ---
	api := e.Group("/api", middleware.Authenticate(d.Auth))
	for _, r := range routes(d) {
		mw := append([]echo.MiddlewareFunc{}, r.Extra...)
		mw = append(mw, middleware.RequireRoles(r.Roles...))
		api.Add(r.Method, r.Path, r.Handler, mw...)
	}

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
