package repository

import (
	"context"
	"time"

	"github.com/AzielCF/az-chatbox/chatlog/domain"
	"gorm.io/gorm"
)

type chatLogModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	AgentID     string    `gorm:"index:idx_chat_log_agent;size:64"`
	Agent       string    `gorm:"size:255"`
	ChatChannel string    `gorm:"size:32"`
	ChatMethod  string    `gorm:"size:32"`
	IsMember    bool      `gorm:"default:false"`
	IP          string    `gorm:"column:ip;size:64"`
	Country     string    `gorm:"size:8"`
	ChatDate    time.Time `gorm:"index:idx_chat_log_date;not null"`
}

func (chatLogModel) TableName() string {
	return "chat_log"
}

type ChatLogGormRepository struct {
	db *gorm.DB
}

func NewChatLogGormRepository(db *gorm.DB) *ChatLogGormRepository {
	return &ChatLogGormRepository{db: db}
}

func (r *ChatLogGormRepository) InitSchema(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&chatLogModel{})
}

func (r *ChatLogGormRepository) Insert(ctx context.Context, e *domain.Entry) error {
	m := chatLogModel{
		AgentID:     e.AgentID,
		Agent:       e.Agent,
		ChatChannel: e.ChatChannel,
		ChatMethod:  string(e.ChatMethod),
		IsMember:    e.IsMember,
		IP:          e.IP,
		Country:     e.Country,
		ChatDate:    e.ChatDate.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	e.ID = m.ID
	return nil
}

func (r *ChatLogGormRepository) Report(ctx context.Context, from, to time.Time) (*domain.Report, error) {
	report := &domain.Report{From: from, To: to}
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&chatLogModel{}).Where("chat_date >= ? AND chat_date < ?", from.UTC(), to.UTC())
	}

	if err := base().Count(&report.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_member = ?", true).Count(&report.Members).Error; err != nil {
		return nil, err
	}

	groups := []struct {
		column string
		dest   *[]domain.Count
	}{
		{"chat_channel", &report.PerChannel},
		{"agent", &report.PerAgent},
		{"country", &report.PerCountry},
	}
	for _, g := range groups {
		var rows []domain.Count
		err := base().
			Select(g.column + " AS name, COUNT(*) AS total").
			Group(g.column).
			Order("total DESC").
			Order(g.column).
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []domain.Count{}
		}
		*g.dest = rows
	}
	return report, nil
}

func (r *ChatLogGormRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("chat_date < ?", cutoff.UTC()).Delete(&chatLogModel{})
	return result.RowsAffected, result.Error
}
