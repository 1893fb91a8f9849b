package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/salesdesk/sales-api/internal/core/domain"
	"github.com/salesdesk/sales-api/internal/core/ports"
)

type AgentService struct {
	repo   ports.AgentRepository
	logger zerolog.Logger
}

func NewAgentService(repo ports.AgentRepository, logger zerolog.Logger) *AgentService {
	return &AgentService{repo: repo, logger: logger}
}

func (s *AgentService) Create(ctx context.Context, a *domain.Agent) (*domain.Agent, error) {
	if a.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Info().Str("agent_code", a.Code).Msg("agent created")
	return a, nil
}

func (s *AgentService) Get(ctx context.Context, code string) (*domain.Agent, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *AgentService) List(ctx context.Context) ([]*domain.Agent, error) {
	return s.repo.List(ctx)
}

func (s *AgentService) Update(ctx context.Context, code string, u ports.AgentUpdate) (*domain.Agent, error) {
	return s.repo.Update(ctx, code, u)
}

// Delete removes the agent and reports how many records were affected.
func (s *AgentService) Delete(ctx context.Context, code string) (int64, error) {
	n, err := s.repo.Delete(ctx, code)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, domain.ErrAgentNotFound
	}
	s.logger.Info().Str("agent_code", code).Msg("agent deleted")
	return n, nil
}
