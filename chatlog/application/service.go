package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AzielCF/az-chatbox/chatlog/domain"
	"github.com/AzielCF/az-chatbox/validations"
	"github.com/sirupsen/logrus"
)

const RetentionForever = "forever"

type ChatLogService struct {
	repo domain.Repository
	now  func() time.Time
}

func NewChatLogService(repo domain.Repository) *ChatLogService {
	return &ChatLogService{repo: repo, now: time.Now}
}

func (s *ChatLogService) InitSchema(ctx context.Context) error {
	return s.repo.InitSchema(ctx)
}

// Record stores one chat start. A zero ChatDate is stamped with the current time.
func (s *ChatLogService) Record(ctx context.Context, entry *domain.Entry) error {
	if err := s.prepare(ctx, entry); err != nil {
		return err
	}
	return s.repo.Insert(ctx, entry)
}

func (s *ChatLogService) prepare(ctx context.Context, entry *domain.Entry) error {
	if entry.ChatDate.IsZero() {
		entry.ChatDate = s.now()
	}
	entry.Country = strings.ToUpper(strings.TrimSpace(entry.Country))
	return validations.ValidateChatLogEntry(ctx, entry)
}

func (s *ChatLogService) Report(ctx context.Context, from, to time.Time) (*domain.Report, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidRange
	}
	return s.repo.Report(ctx, from, to)
}

// Purge removes entries older than the retention window measured back from now.
// "forever" keeps everything.
func (s *ChatLogService) Purge(ctx context.Context, now time.Time, retention string) (int64, error) {
	months, err := ParseRetention(retention)
	if err != nil {
		return 0, err
	}
	if months == 0 {
		return 0, nil
	}

	cutoff := now.AddDate(0, -months, 0)
	n, err := s.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge chat log: %w", err)
	}
	if n > 0 {
		logrus.Infof("[CHATLOG] Purged %d entries older than %s", n, cutoff.Format(time.DateOnly))
	}
	return n, nil
}

// ParseRetention returns the number of months to keep; 0 means forever.
func ParseRetention(retention string) (int, error) {
	retention = strings.TrimSpace(retention)
	if retention == RetentionForever {
		return 0, nil
	}
	num, ok := strings.CutSuffix(retention, "-months")
	if !ok {
		return 0, domain.ErrInvalidRetention
	}
	months, err := strconv.Atoi(num)
	if err != nil || months <= 0 {
		return 0, domain.ErrInvalidRetention
	}
	return months, nil
}
