package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

type stubAgentRepo struct {
	agents map[string]*domain.Agent
}

func (r *stubAgentRepo) Create(_ context.Context, a *domain.Agent) error {
	if _, ok := r.agents[a.Code]; ok {
		return domain.ErrDuplicateRecord
	}
	r.agents[a.Code] = a
	return nil
}

func (r *stubAgentRepo) FindByCode(_ context.Context, code string) (*domain.Agent, error) {
	a, ok := r.agents[code]
	if !ok {
		return nil, domain.ErrAgentNotFound
	}
	return a, nil
}

func (r *stubAgentRepo) List(context.Context) ([]*domain.Agent, error) { return nil, nil }

func (r *stubAgentRepo) Update(_ context.Context, code string, _ ports.AgentUpdate) (*domain.Agent, error) {
	return r.FindByCode(context.Background(), code)
}

func (r *stubAgentRepo) Delete(_ context.Context, code string) (int64, error) {
	if _, ok := r.agents[code]; !ok {
		return 0, nil
	}
	delete(r.agents, code)
	return 1, nil
}

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	r.customers[c.Code] = c
	return nil
}

func (r *stubCustomerRepo) FindByCode(_ context.Context, code string) (*domain.Customer, error) {
	c, ok := r.customers[code]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) List(context.Context) ([]*domain.Customer, error) { return nil, nil }

func (r *stubCustomerRepo) Update(_ context.Context, code string, _ ports.CustomerUpdate) (*domain.Customer, error) {
	return r.FindByCode(context.Background(), code)
}

func (r *stubCustomerRepo) Delete(context.Context, string) (int64, error) { return 0, nil }

type stubOrderRepo struct {
	orders    map[int64]*domain.Order
	lastPage  ports.Page
	lastLimit int
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) error {
	if _, ok := r.orders[o.Number]; ok {
		return domain.ErrDuplicateRecord
	}
	r.orders[o.Number] = o
	return nil
}

func (r *stubOrderRepo) FindByNumber(_ context.Context, num int64) (*domain.Order, error) {
	o, ok := r.orders[num]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, p ports.Page) ([]*domain.Order, int64, error) {
	r.lastPage = p
	return nil, int64(len(r.orders)), nil
}

func (r *stubOrderRepo) Update(_ context.Context, num int64, _ ports.OrderUpdate) (*domain.Order, error) {
	return r.FindByNumber(context.Background(), num)
}

func (r *stubOrderRepo) Delete(_ context.Context, num int64) (int64, error) {
	if _, ok := r.orders[num]; !ok {
		return 0, nil
	}
	delete(r.orders, num)
	return 1, nil
}

func (r *stubOrderRepo) TotalByCustomer(_ context.Context, limit int) ([]domain.AmountTotal, error) {
	r.lastLimit = limit
	return nil, nil
}

func (r *stubOrderRepo) TotalByAgent(_ context.Context, limit int) ([]domain.AmountTotal, error) {
	r.lastLimit = limit
	return nil, nil
}

func (r *stubOrderRepo) TotalByCountry(_ context.Context, limit int) ([]domain.AmountTotal, error) {
	r.lastLimit = limit
	return nil, nil
}

func newOrderFixture() (*OrderService, *stubOrderRepo) {
	agents := &stubAgentRepo{agents: map[string]*domain.Agent{"A001": {Code: "A001"}}}
	customers := &stubCustomerRepo{customers: map[string]*domain.Customer{"C001": {Code: "C001", AgentCode: "A001"}}}
	orders := &stubOrderRepo{orders: map[int64]*domain.Order{}}
	return NewOrderService(orders, customers, agents, zerolog.Nop()), orders
}

func TestOrderService_Create_DefaultsDate(t *testing.T) {
	svc, repo := newOrderFixture()
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	o, err := svc.Create(context.Background(), &domain.Order{Number: 200100, Amount: 1000, CustomerCode: "C001", AgentCode: "A001"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !o.Date.Equal(fixed) {
		t.Fatalf("expected default date %v, got %v", fixed, o.Date)
	}
	if _, ok := repo.orders[200100]; !ok {
		t.Fatalf("order not stored")
	}
}

func TestOrderService_Create_UnknownCustomer(t *testing.T) {
	svc, _ := newOrderFixture()

	_, err := svc.Create(context.Background(), &domain.Order{Number: 1, CustomerCode: "C999", AgentCode: "A001"})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestOrderService_Create_InvalidNumber(t *testing.T) {
	svc, _ := newOrderFixture()

	_, err := svc.Create(context.Background(), &domain.Order{CustomerCode: "C001", AgentCode: "A001"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestOrderService_List_ClampsPaging(t *testing.T) {
	svc, repo := newOrderFixture()
	for i := int64(1); i <= 25; i++ {
		repo.orders[i] = &domain.Order{Number: i}
	}

	res, err := svc.List(context.Background(), ports.Page{Page: 0, Limit: 500})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if repo.lastPage.Page != 1 || repo.lastPage.Limit != maxPageSize {
		t.Fatalf("unexpected page passed to repo: %+v", repo.lastPage)
	}
	if res.Meta.Total != 25 || res.Meta.TotalPages != 1 {
		t.Fatalf("unexpected meta: %+v", res.Meta)
	}

	res, _ = svc.List(context.Background(), ports.Page{Page: 2, Limit: 10})
	if res.Meta.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", res.Meta.TotalPages)
	}
	if res.Data == nil {
		t.Fatalf("data must be an empty slice, not nil")
	}
}

func TestOrderService_Delete_NotFound(t *testing.T) {
	svc, _ := newOrderFixture()

	if _, err := svc.Delete(context.Background(), 42); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_Totals_DefaultLimit(t *testing.T) {
	svc, repo := newOrderFixture()

	if _, err := svc.TotalByCountry(context.Background(), 0); err != nil {
		t.Fatalf("TotalByCountry: %v", err)
	}
	if repo.lastLimit != defaultPageSize {
		t.Fatalf("expected default limit %d, got %d", defaultPageSize, repo.lastLimit)
	}
}

func TestAgentService_Delete_NotFound(t *testing.T) {
	svc := NewAgentService(&stubAgentRepo{agents: map[string]*domain.Agent{}}, zerolog.Nop())

	if _, err := svc.Delete(context.Background(), "A404"); !errors.Is(err, domain.ErrAgentNotFound) {
		t.Fatalf("expected ErrAgentNotFound, got %v", err)
	}
}

func TestCustomerService_Create_UnknownAgent(t *testing.T) {
	svc := NewCustomerService(
		&stubCustomerRepo{customers: map[string]*domain.Customer{}},
		&stubAgentRepo{agents: map[string]*domain.Agent{}},
		zerolog.Nop(),
	)

	_, err := svc.Create(context.Background(), &domain.Customer{Code: "C002", AgentCode: "A404"})
	if !errors.Is(err, domain.ErrAgentNotFound) {
		t.Fatalf("expected ErrAgentNotFound, got %v", err)
	}
}
