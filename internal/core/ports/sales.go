package ports

import (
	"context"

	"github.com/salesdesk/sales-api/internal/core/domain"
)

// Page selects a window of a listing. Page is 1-based.
type Page struct {
	Page  int
	Limit int
}

// Skip returns the number of records before the page.
func (p Page) Skip() int64 {
	if p.Page < 1 {
		return 0
	}
	return int64((p.Page - 1) * p.Limit)
}

// AgentUpdate holds the optional fields of an agent patch.
type AgentUpdate struct {
	Name        *string
	WorkingArea *string
	Commission  *float64
	PhoneNo     *string
	Country     *string
}

// CustomerUpdate holds the optional fields of a customer patch.
type CustomerUpdate struct {
	Name           *string
	City           *string
	WorkingArea    *string
	Country        *string
	Grade          *int
	OpeningAmt     *float64
	ReceiveAmt     *float64
	PaymentAmt     *float64
	OutstandingAmt *float64
	PhoneNo        *string
	AgentCode      *string
}

// OrderUpdate holds the optional fields of an order patch.
type OrderUpdate struct {
	Amount        *float64
	AdvanceAmount *float64
	CustomerCode  *string
	AgentCode     *string
	Description   *string
}

type AgentRepository interface {
	Create(ctx context.Context, a *domain.Agent) error
	FindByCode(ctx context.Context, code string) (*domain.Agent, error)
	List(ctx context.Context) ([]*domain.Agent, error)
	Update(ctx context.Context, code string, u AgentUpdate) (*domain.Agent, error)
	Delete(ctx context.Context, code string) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	FindByCode(ctx context.Context, code string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, code string, u CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, code string) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	FindByNumber(ctx context.Context, num int64) (*domain.Order, error)
	List(ctx context.Context, p Page) ([]*domain.Order, int64, error)
	Update(ctx context.Context, num int64, u OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, num int64) (int64, error)
	TotalByCustomer(ctx context.Context, limit int) ([]domain.AmountTotal, error)
	TotalByAgent(ctx context.Context, limit int) ([]domain.AmountTotal, error)
	TotalByCountry(ctx context.Context, limit int) ([]domain.AmountTotal, error)
}

type AgentService interface {
	Create(ctx context.Context, a *domain.Agent) (*domain.Agent, error)
	Get(ctx context.Context, code string) (*domain.Agent, error)
	List(ctx context.Context) ([]*domain.Agent, error)
	Update(ctx context.Context, code string, u AgentUpdate) (*domain.Agent, error)
	Delete(ctx context.Context, code string) (int64, error)
}

type CustomerService interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Get(ctx context.Context, code string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
	Update(ctx context.Context, code string, u CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, code string) (int64, error)
}

// OrderList is one page of orders plus paging metadata.
type OrderList struct {
	Data []*domain.Order `json:"data"`
	Meta PageMeta        `json:"meta"`
}

type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

type OrderService interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	Get(ctx context.Context, num int64) (*domain.Order, error)
	List(ctx context.Context, p Page) (*OrderList, error)
	Update(ctx context.Context, num int64, u OrderUpdate) (*domain.Order, error)
	Delete(ctx context.Context, num int64) (int64, error)
	TotalByCustomer(ctx context.Context, limit int) ([]domain.AmountTotal, error)
	TotalByAgent(ctx context.Context, limit int) ([]domain.AmountTotal, error)
	TotalByCountry(ctx context.Context, limit int) ([]domain.AmountTotal, error)
}
