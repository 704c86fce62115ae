package application

import (
	"context"
	"time"

	chatboxDomain "github.com/AzielCF/az-chatbox/chatbox/domain"
	"github.com/AzielCF/az-chatbox/core/config"
	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Jobs runs the periodic chat log maintenance: retention purge and the weekly summary.
type Jobs struct {
	cron     *cron.Cron
	service  *ChatLogService
	settings chatboxDomain.SettingsSource
}

func NewJobs(service *ChatLogService, settings chatboxDomain.SettingsSource) *Jobs {
	return &Jobs{
		cron:     cron.New(),
		service:  service,
		settings: settings,
	}
}

// Register adds both jobs using the given cron specs.
func (j *Jobs) Register(cfg config.ReportConfig) error {
	if _, err := j.cron.AddFunc(cfg.PurgeSpec, j.RunPurge); err != nil {
		return err
	}
	if _, err := j.cron.AddFunc(cfg.WeeklySpec, j.RunWeeklyReport); err != nil {
		return err
	}
	logrus.Infof("[CHATLOG] Jobs registered (purge=%q weekly=%q)", cfg.PurgeSpec, cfg.WeeklySpec)
	return nil
}

func (j *Jobs) Start() {
	j.cron.Start()
}

// Stop waits for running jobs to finish.
func (j *Jobs) Stop() {
	<-j.cron.Stop().Done()
}

func (j *Jobs) RunPurge() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	s := j.settings.Load(ctx)
	if _, err := j.service.Purge(ctx, time.Now(), s.ReportStorageDuration); err != nil {
		logrus.WithError(err).Error("[CHATLOG] Purge failed")
	}
}

func (j *Jobs) RunWeeklyReport() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if j.settings.Load(ctx).ReceiveWeeklyReport != chatboxDomain.WeeklyReportActive {
		logrus.Debug("[CHATLOG] Weekly report disabled")
		return
	}
	if _, err := j.WeeklySummary(ctx, time.Now()); err != nil {
		logrus.WithError(err).Error("[CHATLOG] Weekly report failed")
	}
}

// WeeklySummary logs and returns the summary for the seven days before now.
func (j *Jobs) WeeklySummary(ctx context.Context, now time.Time) (string, error) {
	from := now.AddDate(0, 0, -7)
	report, err := j.service.Report(ctx, from, now)
	if err != nil {
		return "", err
	}

	summary := Summarize(report.Total, report.Members, from, now)
	logrus.Info("[CHATLOG] " + summary)
	for _, c := range report.PerChannel {
		logrus.Infof("[CHATLOG]   %-12s %s", c.Name, humanize.Comma(c.Total))
	}
	return summary, nil
}

// Summarize renders a one-line human readable report headline.
func Summarize(total, members int64, from, now time.Time) string {
	return "Weekly report: " + humanize.Comma(total) + " chat(s), " +
		humanize.Comma(members) + " from members, since " + humanize.RelTime(from, now, "ago", "from now")
}
