package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

type CustomerService struct {
	repo   ports.CustomerRepository
	agents ports.AgentRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, agents ports.AgentRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, agents: agents, logger: logger}
}

// Create stores a customer. A referenced agent must exist.
func (s *CustomerService) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if c.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	if c.AgentCode != "" {
		if _, err := s.agents.FindByCode(ctx, c.AgentCode); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info().Str("cust_code", c.Code).Msg("customer created")
	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, code string) (*domain.Customer, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Update(ctx context.Context, code string, u ports.CustomerUpdate) (*domain.Customer, error) {
	if u.AgentCode != nil && *u.AgentCode != "" {
		if _, err := s.agents.FindByCode(ctx, *u.AgentCode); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, code, u)
}

func (s *CustomerService) Delete(ctx context.Context, code string) (int64, error) {
	n, err := s.repo.Delete(ctx, code)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, domain.ErrCustomerNotFound
	}
	s.logger.Info().Str("cust_code", code).Msg("customer deleted")
	return n, nil
}
