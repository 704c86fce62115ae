package bundle

import (
	"slices"
	"strings"
	"time"

	"github.com/AzielCF/az-chatbox/chatbox/application"
	"github.com/AzielCF/az-chatbox/chatbox/domain"
	"github.com/AzielCF/az-chatbox/pkg/timeutils"
	"github.com/sirupsen/logrus"
)

// Scheduler checks the weekly business hours in the site timezone.
type Scheduler struct{}

func (Scheduler) IsScheduleActive(s domain.Settings, now time.Time) bool {
	return application.IsWithinSchedule(s.Schedule, now.In(timeutils.LoadLocation(s.Timezone)))
}

// CountryBlocker blocks visitors whose country code is in the restriction list.
// An unknown country is never blocked.
type CountryBlocker struct{}

func (CountryBlocker) IsBlocked(s domain.Settings, page domain.PageContext) bool {
	code := strings.ToUpper(strings.TrimSpace(page.CountryCode))
	if code == "" {
		return false
	}
	return slices.ContainsFunc(s.CountryRestriction, func(c string) bool {
		return strings.EqualFold(strings.TrimSpace(c), code)
	})
}

type alwaysActive struct{}

func (alwaysActive) IsScheduleActive(domain.Settings, time.Time) bool { return true }

type neverBlocked struct{}

func (neverBlocked) IsBlocked(domain.Settings, domain.PageContext) bool { return false }

// New returns the installed extension.
func New() domain.Extension {
	return domain.Extension{Present: true, Scheduler: Scheduler{}, Blocker: CountryBlocker{}}
}

// None returns the fallback used when the extension is not installed.
func None() domain.Extension {
	return domain.Extension{Present: false, Scheduler: alwaysActive{}, Blocker: neverBlocked{}}
}

// Resolve picks the extension according to configuration.
func Resolve(enabled bool) domain.Extension {
	if enabled {
		logrus.Info("[CHATBOX] Extension enabled: business hours, country block, contact form, bot integration")
		return New()
	}
	logrus.Debugf("[CHATBOX] %v; using no-op fallbacks", domain.ErrExtensionUnavailable)
	return None()
}
