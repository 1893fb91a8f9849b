package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs: tokens are "tok-<role>" and resolve to a principal holding that role.
// ---------------------------------------------------------------------------

type stubAuth struct{}

func (stubAuth) ValidateCredentials(context.Context, string, string) (*domain.User, error) {
	return nil, nil
}

func (stubAuth) Login(context.Context, *domain.User) (*ports.AccessToken, error) {
	return &ports.AccessToken{AccessToken: "x"}, nil
}

func (stubAuth) Signup(context.Context, ports.SignupInput) (*ports.AccessToken, error) {
	return &ports.AccessToken{AccessToken: "x"}, nil
}

func (stubAuth) Authenticate(_ context.Context, tok string) (*domain.Principal, error) {
	role, ok := strings.CutPrefix(tok, "tok-")
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	if role == "deleted" {
		return nil, domain.ErrUnauthenticated
	}
	return &domain.Principal{ID: 1, Email: role + "@demo.com", Roles: []string{role}}, nil
}

type stubUsers struct{ calls int }

func (s *stubUsers) AssignRoles(_ context.Context, email string, _ []string) (*domain.User, error) {
	s.calls++
	return &domain.User{ID: 2, Email: email, Roles: []domain.Role{{ID: 3, Name: "customer"}}}, nil
}

func (s *stubUsers) CreateAdmin(context.Context, ports.SignupInput) (*domain.User, error) {
	return nil, nil
}

type stubAgents struct{}

func (stubAgents) Create(_ context.Context, a *domain.Agent) (*domain.Agent, error) { return a, nil }
func (stubAgents) Get(context.Context, string) (*domain.Agent, error) {
	return nil, domain.ErrAgentNotFound
}
func (stubAgents) List(context.Context) ([]*domain.Agent, error) { return []*domain.Agent{}, nil }
func (stubAgents) Update(context.Context, string, ports.AgentUpdate) (*domain.Agent, error) {
	return &domain.Agent{}, nil
}
func (stubAgents) Delete(context.Context, string) (int64, error) { return 1, nil }

type stubCustomers struct{}

func (stubCustomers) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	return c, nil
}
func (stubCustomers) Get(context.Context, string) (*domain.Customer, error) {
	return &domain.Customer{}, nil
}
func (stubCustomers) List(context.Context) ([]*domain.Customer, error) {
	return []*domain.Customer{}, nil
}
func (stubCustomers) Update(context.Context, string, ports.CustomerUpdate) (*domain.Customer, error) {
	return &domain.Customer{}, nil
}
func (stubCustomers) Delete(context.Context, string) (int64, error) { return 1, nil }

type stubOrders struct{}

func (stubOrders) Create(_ context.Context, o *domain.Order) (*domain.Order, error) { return o, nil }
func (stubOrders) Get(context.Context, int64) (*domain.Order, error)               { return &domain.Order{}, nil }
func (stubOrders) List(context.Context, ports.Page) (*ports.OrderList, error) {
	return &ports.OrderList{Data: []*domain.Order{}}, nil
}
func (stubOrders) Update(context.Context, int64, ports.OrderUpdate) (*domain.Order, error) {
	return &domain.Order{}, nil
}
func (stubOrders) Delete(context.Context, int64) (int64, error) { return 1, nil }
func (stubOrders) TotalByCustomer(context.Context, int) ([]domain.AmountTotal, error) {
	return []domain.AmountTotal{}, nil
}
func (stubOrders) TotalByAgent(context.Context, int) ([]domain.AmountTotal, error) {
	return []domain.AmountTotal{}, nil
}
func (stubOrders) TotalByCountry(context.Context, int) ([]domain.AmountTotal, error) {
	return []domain.AmountTotal{}, nil
}

func newTestRouter(users *stubUsers) http.Handler {
	return NewRouter(Deps{
		Auth:       stubAuth{},
		Users:      users,
		Agents:     stubAgents{},
		Customers:  stubCustomers{},
		Orders:     stubOrders{},
		Logger:     zerolog.Nop(),
		Registerer: prometheus.NewRegistry(),
	})
}

func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RoleGates(t *testing.T) {
	h := newTestRouter(&stubUsers{})

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		want   int
	}{
		{"orders list as agent", http.MethodGet, "/api/orders", "tok-agent", "", http.StatusOK},
		{"orders list as customer", http.MethodGet, "/api/orders", "tok-customer", "", http.StatusForbidden},
		{"orders list as admin", http.MethodGet, "/api/orders", "tok-admin", "", http.StatusOK},
		{"orders list anonymous", http.MethodGet, "/api/orders", "", "", http.StatusUnauthorized},
		{"orders list bad token", http.MethodGet, "/api/orders", "garbage", "", http.StatusUnauthorized},
		{"orders list deleted user", http.MethodGet, "/api/orders", "tok-deleted", "", http.StatusUnauthorized},
		{"create order as customer", http.MethodPost, "/api/orders", "tok-customer",
			`{"ordNum":200100,"ordAmount":1000,"custCode":"C00013","agentCode":"A003"}`, http.StatusCreated},
		{"create order as agent", http.MethodPost, "/api/orders", "tok-agent", `{}`, http.StatusForbidden},
		{"total by customer as customer", http.MethodGet, "/api/orders/total-amount-by-customer", "tok-customer", "", http.StatusOK},
		{"total by country as customer", http.MethodGet, "/api/orders/total-amount-by-country", "tok-customer", "", http.StatusForbidden},
		{"agents as guest", http.MethodGet, "/api/agents", "tok-guest", "", http.StatusForbidden},
		{"missing agent", http.MethodGet, "/api/agents/A404", "tok-agent", "", http.StatusNotFound},
		{"me as guest", http.MethodGet, "/api/users/me", "tok-guest", "", http.StatusOK},
		{"login is open", http.MethodPost, "/api/auth/login", "", `{"email":"a@b.com","password":"x"}`, http.StatusUnauthorized},
		{"signup is open", http.MethodPost, "/api/auth/signup", "", `{"email":"a@b.com","password":"pass"}`, http.StatusCreated},
		{"health", http.MethodGet, "/health", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, tt.method, tt.path, tt.token, tt.body)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_AssignRolesRequiresAdmin(t *testing.T) {
	users := &stubUsers{}
	h := newTestRouter(users)
	body := `{"email":"demo@demo.com","roleNames":["customer"]}`

	rec := do(h, http.MethodPost, "/api/users/assign-roles", "tok-customer", body)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Kind != "forbidden" || resp.Message != "You do not have access to this resource" {
		t.Fatalf("unexpected error body: %+v", resp)
	}
	if users.calls != 0 {
		t.Fatalf("service must not run for a denied request")
	}

	rec = do(h, http.MethodPost, "/api/users/assign-roles", "tok-admin", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if users.calls != 1 {
		t.Fatalf("expected one service call, got %d", users.calls)
	}
}

func TestRouter_AssignRolesMalformedBody(t *testing.T) {
	h := newTestRouter(&stubUsers{})

	rec := do(h, http.MethodPost, "/api/users/assign-roles", "tok-admin", `{"email":"demo@demo.com","roleNames":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"kind":"bad_request"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
