package application

import (
	"context"
	"strings"
	"time"

	"github.com/AzielCF/az-chatbox/agents/domain"
	"github.com/AzielCF/az-chatbox/validations"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AgentService struct {
	repo domain.AgentRepository
}

func NewAgentService(repo domain.AgentRepository) *AgentService {
	return &AgentService{repo: repo}
}

func (s *AgentService) InitSchema(ctx context.Context) error {
	return s.repo.InitSchema(ctx)
}

func (s *AgentService) Create(ctx context.Context, agent *domain.Agent) error {
	normalize(agent)
	if agent.Status == "" {
		agent.Status = domain.StatusOnline
	}
	if err := validations.ValidateAgent(ctx, agent); err != nil {
		return err
	}

	agent.ID = uuid.New().String()
	agent.Enabled = true
	agent.CreatedAt = time.Now()
	agent.UpdatedAt = agent.CreatedAt

	if err := s.repo.Create(ctx, agent); err != nil {
		return err
	}
	logrus.Infof("[AGENTS] Created agent %s (%s)", agent.Name, agent.ID)
	return nil
}

func (s *AgentService) GetByID(ctx context.Context, id string) (*domain.Agent, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AgentService) Update(ctx context.Context, agent *domain.Agent) error {
	normalize(agent)
	if err := validations.ValidateAgent(ctx, agent); err != nil {
		return err
	}
	return s.repo.Update(ctx, agent)
}

func (s *AgentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logrus.Infof("[AGENTS] Deleted agent %s", id)
	return nil
}

func (s *AgentService) List(ctx context.Context, filter domain.AgentFilter) ([]*domain.Agent, error) {
	return s.repo.List(ctx, filter)
}

// SetEnabled toggles whether the agent can appear in the chatbox.
func (s *AgentService) SetEnabled(ctx context.Context, id string, enabled bool) error {
	agent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	agent.Enabled = enabled
	return s.repo.Update(ctx, agent)
}

func (s *AgentService) SetAvatar(ctx context.Context, id, avatarPath string) (*domain.Agent, error) {
	agent, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	agent.AvatarPath = avatarPath
	if err := s.repo.Update(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func normalize(a *domain.Agent) {
	a.Name = strings.TrimSpace(a.Name)
	a.JobTitle = strings.TrimSpace(a.JobTitle)
	a.WhatsAppID = strings.TrimPrefix(strings.TrimSpace(a.WhatsAppID), "+")
	a.FacebookID = strings.TrimSpace(a.FacebookID)
	a.TelegramID = strings.TrimPrefix(strings.TrimSpace(a.TelegramID), "@")
	a.PhoneNumber = strings.TrimSpace(a.PhoneNumber)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
}
