package repository

import (
	"context"
	"errors"
	"time"

	"github.com/AzielCF/az-chatbox/agents/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type agentModel struct {
	ID                       string `gorm:"primaryKey"`
	Name                     string `gorm:"index:idx_agents_name;not null"`
	JobTitle                 string
	WelcomeMessage           string `gorm:"type:text"`
	WhatsAppID               string `gorm:"column:whatsapp_id"`
	WhatsAppPrefilledMessage string `gorm:"column:whatsapp_prefilled_message;type:text"`
	FacebookID               string
	TelegramID               string
	PhoneNumber              string
	PhoneOnlyOnMobile        bool `gorm:"default:false"`
	Email                    string
	Status                   string `gorm:"default:'online'"`
	AvatarPath               string
	Ordering                 int       `gorm:"index:idx_agents_ordering;default:0"`
	Enabled                  bool      `gorm:"default:true"`
	CreatedAt                time.Time `gorm:"not null"`
	UpdatedAt                time.Time `gorm:"not null"`
}

func (agentModel) TableName() string {
	return "agents"
}

type AgentGormRepository struct {
	db *gorm.DB
}

func NewAgentGormRepository(db *gorm.DB) *AgentGormRepository {
	return &AgentGormRepository{db: db}
}

func (r *AgentGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&agentModel{})
}

func (r *AgentGormRepository) Create(ctx context.Context, agent *domain.Agent) error {
	if agent.ID == "" {
		agent.ID = uuid.New().String()
	}
	now := time.Now()
	if agent.CreatedAt.IsZero() {
		agent.CreatedAt = now
	}
	agent.UpdatedAt = now

	model := toAgentModel(agent)
	return r.db.WithContext(ctx).Create(&model).Error
}

func (r *AgentGormRepository) GetByID(ctx context.Context, id string) (*domain.Agent, error) {
	var m agentModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAgentNotFound
		}
		return nil, err
	}
	return fromAgentModel(m), nil
}

func (r *AgentGormRepository) Update(ctx context.Context, agent *domain.Agent) error {
	agent.UpdatedAt = time.Now()
	model := toAgentModel(agent)

	// Select("*") so that false/zero fields are written too.
	result := r.db.WithContext(ctx).Model(&agentModel{ID: agent.ID}).Select("*").Omit("created_at").Updates(&model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAgentNotFound
	}
	return nil
}

func (r *AgentGormRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&agentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAgentNotFound
	}
	return nil
}

func (r *AgentGormRepository) List(ctx context.Context, filter domain.AgentFilter) ([]*domain.Agent, error) {
	var models []agentModel
	query := r.db.WithContext(ctx).Model(&agentModel{})

	if filter.Enabled != nil {
		query = query.Where("enabled = ?", *filter.Enabled)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR job_title LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}

	query = query.Order("ordering ASC").Order("name ASC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	agents := make([]*domain.Agent, 0, len(models))
	for _, m := range models {
		agents = append(agents, fromAgentModel(m))
	}
	return agents, nil
}

// Mappers

func toAgentModel(a *domain.Agent) agentModel {
	return agentModel{
		ID:                       a.ID,
		Name:                     a.Name,
		JobTitle:                 a.JobTitle,
		WelcomeMessage:           a.WelcomeMessage,
		WhatsAppID:               a.WhatsAppID,
		WhatsAppPrefilledMessage: a.WhatsAppPrefilledMessage,
		FacebookID:               a.FacebookID,
		TelegramID:               a.TelegramID,
		PhoneNumber:              a.PhoneNumber,
		PhoneOnlyOnMobile:        a.PhoneOnlyOnMobile,
		Email:                    a.Email,
		Status:                   string(a.Status),
		AvatarPath:               a.AvatarPath,
		Ordering:                 a.Ordering,
		Enabled:                  a.Enabled,
		CreatedAt:                a.CreatedAt,
		UpdatedAt:                a.UpdatedAt,
	}
}

func fromAgentModel(m agentModel) *domain.Agent {
	return &domain.Agent{
		ID:                       m.ID,
		Name:                     m.Name,
		JobTitle:                 m.JobTitle,
		WelcomeMessage:           m.WelcomeMessage,
		WhatsAppID:               m.WhatsAppID,
		WhatsAppPrefilledMessage: m.WhatsAppPrefilledMessage,
		FacebookID:               m.FacebookID,
		TelegramID:               m.TelegramID,
		PhoneNumber:              m.PhoneNumber,
		PhoneOnlyOnMobile:        m.PhoneOnlyOnMobile,
		Email:                    m.Email,
		Status:                   domain.AgentStatus(m.Status),
		AvatarPath:               m.AvatarPath,
		Ordering:                 m.Ordering,
		Enabled:                  m.Enabled,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}
