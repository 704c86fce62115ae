package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AzielCF/az-chatbox/chatbox/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)

func newTestEngine(s domain.Settings, dir *staticDirectory, ext domain.Extension) *Engine {
	return NewEngine(staticSettings{s: s}, dir, ext).WithClock(func() time.Time { return fixedNow })
}

func TestDecide_AwayWithoutExtension(t *testing.T) {
	s := defaultSettings()
	s.GlobalStatus = domain.StatusAway
	dir := &staticDirectory{listing: oneAgent()}

	d := newTestEngine(s, dir, domain.Extension{}).Decide(context.Background(), domain.PageContext{PageID: "1"})

	assert.Equal(t, domain.TemplateAway, d.Template)
	assert.Equal(t, domain.PresenceAway, d.Presence)
	assert.True(t, d.Eligible)
	require.NotNil(t, d.Data)
	assert.Equal(t, "Away", d.Data.Title)
	assert.Equal(t, s.Texts.AwaySubtitle, d.Data.Subtitle)
	assert.Len(t, d.Data.Listing.Agents, 1)
	assert.Contains(t, d.Style, "background-color: #ff6000;")
}

func TestDecide_IneligibleMobileIsHidden(t *testing.T) {
	s := defaultSettings()
	s.ShowOnMobile = domain.ToggleOff
	dir := &staticDirectory{listing: oneAgent()}

	for _, status := range []domain.GlobalStatus{domain.StatusOnline, domain.StatusAway, domain.StatusOffline} {
		s.GlobalStatus = status
		d := newTestEngine(s, dir, domain.Extension{}).Decide(context.Background(), domain.PageContext{IsMobile: true})

		assert.Equal(t, domain.TemplateHidden, d.Template)
		assert.False(t, d.Eligible)
		assert.Empty(t, d.Style)
		assert.Nil(t, d.Data)
	}
	assert.Zero(t, dir.calls, "agent directory is not consulted for hidden widgets")
}

func TestDecide_NoAgentsWithContactForm(t *testing.T) {
	s := defaultSettings()
	s.ContactFormStatus = domain.ToggleOn
	ext := domain.Extension{Present: true, Scheduler: fixedSchedule(true), Blocker: fixedBlocker(false)}

	d := newTestEngine(s, &staticDirectory{}, ext).Decide(context.Background(), domain.PageContext{})

	assert.Equal(t, domain.TemplateContactForm, d.Template)
	assert.Equal(t, domain.PresenceOffline, d.Presence)
	require.NotNil(t, d.Data)
	assert.Equal(t, s.Texts.OfflineMessage, d.Data.OfflineMessage)
	assert.Contains(t, d.Style, "background-color: #727779;")
}

func TestDecide_ExtensionScheduleGatesOnline(t *testing.T) {
	s := defaultSettings()
	dir := &staticDirectory{listing: oneAgent()}

	closed := domain.Extension{Present: true, Scheduler: fixedSchedule(false)}
	assert.Equal(t, domain.TemplateOffline, newTestEngine(s, dir, closed).Decide(context.Background(), domain.PageContext{}).Template)

	open := domain.Extension{Present: true, Scheduler: fixedSchedule(true)}
	assert.Equal(t, domain.TemplateOnline, newTestEngine(s, dir, open).Decide(context.Background(), domain.PageContext{}).Template)

	// A no-op scheduler reporting closed is ignored when the extension is absent.
	absent := domain.Extension{Scheduler: fixedSchedule(false)}
	assert.Equal(t, domain.TemplateOnline, newTestEngine(s, dir, absent).Decide(context.Background(), domain.PageContext{}).Template)
}

func TestDecide_DeactivatedWidget(t *testing.T) {
	s := defaultSettings()
	s.Activation = "inactive"

	d := newTestEngine(s, &staticDirectory{listing: oneAgent()}, domain.Extension{}).Decide(context.Background(), domain.PageContext{})
	assert.Equal(t, domain.TemplateHidden, d.Template)
}

func TestDecide_CountryBlocked(t *testing.T) {
	s := defaultSettings()
	s.ActivateCountryBlock = domain.ToggleOn
	ext := domain.Extension{Present: true, Scheduler: fixedSchedule(true), Blocker: fixedBlocker(true)}

	d := newTestEngine(s, &staticDirectory{listing: oneAgent()}, ext).Decide(context.Background(), domain.PageContext{CountryCode: "XX"})
	assert.Equal(t, domain.TemplateHidden, d.Template)
}

func TestDecide_DirectoryFailureRendersOffline(t *testing.T) {
	s := defaultSettings()
	dir := &staticDirectory{err: errors.New("db down")}

	d := newTestEngine(s, dir, domain.Extension{}).Decide(context.Background(), domain.PageContext{})
	assert.Equal(t, domain.TemplateOffline, d.Template)
	assert.Equal(t, 1, dir.calls)
}

func TestDecide_TypebotIntegration(t *testing.T) {
	s := defaultSettings()
	s.TypebotStatus = domain.ToggleOn
	s.TypebotLink = "my-bot"
	dir := &staticDirectory{listing: oneAgent()}

	withExt := newTestEngine(s, dir, domain.Extension{Present: true, Scheduler: fixedSchedule(true)}).Decide(context.Background(), domain.PageContext{})
	require.NotNil(t, withExt.Data.Typebot)
	assert.Equal(t, "https://viewer.typebot.io/my-bot", withExt.Data.Typebot.URL)
	assert.Contains(t, withExt.Style, ".chatbox-agent-wrapper {\n  display: none;\n}")

	withoutExt := newTestEngine(s, dir, domain.Extension{}).Decide(context.Background(), domain.PageContext{})
	assert.Nil(t, withoutExt.Data.Typebot)
	assert.Contains(t, withoutExt.Style, ".chatbox-agent-wrapper {\n  display: block;\n}")
}

func TestEvaluate_OfflineTemplateDropsListing(t *testing.T) {
	s := defaultSettings()
	s.GlobalStatus = domain.StatusOffline

	d := NewEngine(staticSettings{s: s}, &staticDirectory{}, domain.Extension{}).Evaluate(s, domain.PageContext{}, oneAgent(), fixedNow)
	assert.Equal(t, domain.TemplateOffline, d.Template)
	assert.Empty(t, d.Data.Listing.Agents)
	assert.Equal(t, domain.LayoutModern, d.Data.Listing.Layout)
}
