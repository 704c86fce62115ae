package rest

import (
	"context"
	"time"

	chatlogDomain "github.com/AzielCF/az-chatbox/chatlog/domain"
	settingsDomain "github.com/AzielCF/az-chatbox/core/settings/domain"
	pkgError "github.com/AzielCF/az-chatbox/pkg/error"
	"github.com/AzielCF/az-chatbox/pkg/timeutils"
	"github.com/AzielCF/az-chatbox/pkg/utils"
	"github.com/AzielCF/az-chatbox/pkg/workerpool"
	"github.com/gofiber/fiber/v2"
)

type ChatLogReporter interface {
	Report(ctx context.Context, from, to time.Time) (*chatlogDomain.Report, error)
	Purge(ctx context.Context, now time.Time, retention string) (int64, error)
}

type RetentionSource interface {
	Snapshot(ctx context.Context) (map[string]string, error)
}

// QueueStats reports the state of the asynchronous chat log writer.
type QueueStats interface {
	Stats() workerpool.Stats
}

type ChatLog struct {
	Service  ChatLogReporter
	Settings RetentionSource
	Queue    QueueStats
}

func InitRestChatLog(app fiber.Router, service ChatLogReporter, settings RetentionSource, queue QueueStats) ChatLog {
	rest := ChatLog{Service: service, Settings: settings, Queue: queue}
	app.Get("/chatlog/report", rest.GetReport)
	app.Post("/chatlog/purge", rest.Purge)
	app.Get("/chatlog/queue", rest.GetQueueStats)

	return rest
}

// GetReport accepts from/to as YYYY-MM-DD; to is inclusive. Defaults to the last 7 days.
func (handler *ChatLog) GetReport(c *fiber.Ctx) error {
	today := timeutils.StartOfDay(time.Now().UTC())
	from, err := parseDay(c.Query("from"), today.AddDate(0, 0, -7))
	utils.PanicIfNeeded(err)
	to, err := parseDay(c.Query("to"), today)
	utils.PanicIfNeeded(err)

	report, err := handler.Service.Report(c.UserContext(), from, to.AddDate(0, 0, 1))
	if err == chatlogDomain.ErrInvalidRange {
		err = pkgError.ValidationError(err.Error())
	}
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Chat report",
		Results: report,
	})
}

func (handler *ChatLog) Purge(c *fiber.Ctx) error {
	values, err := handler.Settings.Snapshot(c.UserContext())
	utils.PanicIfNeeded(err)

	retention := c.Query("retention", values[settingsDomain.KeyReportStorageDuration])
	removed, err := handler.Service.Purge(c.UserContext(), time.Now(), retention)
	if err == chatlogDomain.ErrInvalidRetention {
		err = pkgError.ValidationError(err.Error())
	}
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Chat log purged",
		Results: fiber.Map{"removed": removed, "retention": retention},
	})
}

func (handler *ChatLog) GetQueueStats(c *fiber.Ctx) error {
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Chat log queue",
		Results: handler.Queue.Stats(),
	})
}

func parseDay(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	day, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, pkgError.ValidationError("dates must use the YYYY-MM-DD format")
	}
	return day, nil
}
