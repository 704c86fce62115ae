package bundle

import (
	"testing"
	"time"

	"github.com/AzielCF/az-chatbox/chatbox/domain"
	"github.com/stretchr/testify/assert"
)

func TestScheduler_UsesSiteTimezone(t *testing.T) {
	var week domain.WeeklySchedule
	week[time.Monday] = domain.DaySchedule{Enabled: true, Start: "09:00", End: "17:00"}
	s := domain.Settings{Schedule: week, Timezone: "America/Lima"}

	// Monday 13:00 UTC is 08:00 in Lima.
	assert.False(t, Scheduler{}.IsScheduleActive(s, time.Date(2024, 5, 6, 13, 0, 0, 0, time.UTC)))
	// Monday 14:00 UTC is 09:00 in Lima.
	assert.True(t, Scheduler{}.IsScheduleActive(s, time.Date(2024, 5, 6, 14, 0, 0, 0, time.UTC)))

	s.Timezone = "Invalid/Zone"
	assert.False(t, Scheduler{}.IsScheduleActive(s, time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)))
	assert.True(t, Scheduler{}.IsScheduleActive(s, time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)))
}

func TestCountryBlocker(t *testing.T) {
	s := domain.Settings{CountryRestriction: []string{"US", " cn "}}

	assert.True(t, CountryBlocker{}.IsBlocked(s, domain.PageContext{CountryCode: "us"}))
	assert.True(t, CountryBlocker{}.IsBlocked(s, domain.PageContext{CountryCode: "CN"}))
	assert.False(t, CountryBlocker{}.IsBlocked(s, domain.PageContext{CountryCode: "PE"}))
	assert.False(t, CountryBlocker{}.IsBlocked(s, domain.PageContext{}))
	assert.False(t, CountryBlocker{}.IsBlocked(domain.Settings{}, domain.PageContext{CountryCode: "US"}))
}

func TestNone_IsNoop(t *testing.T) {
	ext := None()
	assert.False(t, ext.Present)
	assert.True(t, ext.Scheduler.IsScheduleActive(domain.Settings{}, time.Now()))
	assert.False(t, ext.Blocker.IsBlocked(domain.Settings{CountryRestriction: []string{"US"}}, domain.PageContext{CountryCode: "US"}))
}

func TestResolve(t *testing.T) {
	assert.True(t, Resolve(true).Present)
	assert.False(t, Resolve(false).Present)
}
