package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type OrderService struct {
	repo      ports.OrderRepository
	customers ports.CustomerRepository
	agents    ports.AgentRepository
	logger    zerolog.Logger
	now       func() time.Time
}

func NewOrderService(
	repo ports.OrderRepository,
	customers ports.CustomerRepository,
	agents ports.AgentRepository,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{repo: repo, customers: customers, agents: agents, logger: logger, now: time.Now}
}

// Create stores an order after checking that its customer and agent exist.
// A zero order date is set to the current time.
func (s *OrderService) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if o.Number <= 0 || o.Amount < 0 || o.AdvanceAmount < 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.customers.FindByCode(ctx, o.CustomerCode); err != nil {
		return nil, err
	}
	if _, err := s.agents.FindByCode(ctx, o.AgentCode); err != nil {
		return nil, err
	}
	if o.Date.IsZero() {
		o.Date = s.now().UTC()
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("ord_num", o.Number).Str("cust_code", o.CustomerCode).Msg("order created")
	return o, nil
}

func (s *OrderService) Get(ctx context.Context, num int64) (*domain.Order, error) {
	return s.repo.FindByNumber(ctx, num)
}

// List returns one page of orders, newest first.
func (s *OrderService) List(ctx context.Context, p ports.Page) (*ports.OrderList, error) {
	p = normalizePage(p)

	orders, total, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*domain.Order{}
	}

	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return &ports.OrderList{
		Data: orders,
		Meta: ports.PageMeta{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages},
	}, nil
}

func (s *OrderService) Update(ctx context.Context, num int64, u ports.OrderUpdate) (*domain.Order, error) {
	if (u.Amount != nil && *u.Amount < 0) || (u.AdvanceAmount != nil && *u.AdvanceAmount < 0) {
		return nil, domain.ErrInvalidInput
	}
	if u.CustomerCode != nil {
		if _, err := s.customers.FindByCode(ctx, *u.CustomerCode); err != nil {
			return nil, err
		}
	}
	if u.AgentCode != nil {
		if _, err := s.agents.FindByCode(ctx, *u.AgentCode); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, num, u)
}

func (s *OrderService) Delete(ctx context.Context, num int64) (int64, error) {
	n, err := s.repo.Delete(ctx, num)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, domain.ErrOrderNotFound
	}
	s.logger.Info().Int64("ord_num", num).Msg("order deleted")
	return n, nil
}

func (s *OrderService) TotalByCustomer(ctx context.Context, limit int) ([]domain.AmountTotal, error) {
	return s.repo.TotalByCustomer(ctx, clampLimit(limit))
}

func (s *OrderService) TotalByAgent(ctx context.Context, limit int) ([]domain.AmountTotal, error) {
	return s.repo.TotalByAgent(ctx, clampLimit(limit))
}

func (s *OrderService) TotalByCountry(ctx context.Context, limit int) ([]domain.AmountTotal, error) {
	return s.repo.TotalByCountry(ctx, clampLimit(limit))
}

func normalizePage(p ports.Page) ports.Page {
	if p.Page < 1 {
		p.Page = 1
	}
	p.Limit = clampLimit(p.Limit)
	return p
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
