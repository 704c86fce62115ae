package application

import (
	"context"
	"strings"
	"time"

	"github.com/AzielCF/az-chatbox/chatbox/domain"
	"github.com/sirupsen/logrus"
)

const typebotViewerURL = "https://viewer.typebot.io/"

// Engine composes the access filter, presence resolver, template selector and
// style emitter into one decision per page view. It holds no mutable state.
type Engine struct {
	settings domain.SettingsSource
	agents   domain.AgentDirectory
	ext      domain.Extension
	now      func() time.Time
}

func NewEngine(settings domain.SettingsSource, agents domain.AgentDirectory, ext domain.Extension) *Engine {
	return &Engine{
		settings: settings,
		agents:   agents,
		ext:      ext,
		now:      time.Now,
	}
}

// WithClock replaces the time source. Used by tests and the MCP preview tool.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	cp := *e
	cp.now = now
	return &cp
}

func (e *Engine) ExtensionPresent() bool {
	return e.ext.Present
}

// Decide loads settings and the agent listing and evaluates the page view.
func (e *Engine) Decide(ctx context.Context, page domain.PageContext) domain.Decision {
	s := e.settings.Load(ctx)

	if !s.IsActive() {
		logrus.Debug("[CHATBOX] Widget deactivated")
		return domain.HiddenDecision()
	}
	if rule, ok := firstDenyingRule(s, page, e.ext.Blocker); !ok {
		logrus.Debugf("[CHATBOX] Widget hidden for page %q by rule %s", page.PageID, rule)
		return domain.HiddenDecision()
	}

	listing, err := e.agents.Listing(ctx, page, s)
	if err != nil {
		logrus.WithError(err).Warn("[CHATBOX] Agent directory unavailable, rendering without agents")
		listing = domain.Listing{Layout: s.Layout}
	}

	return e.Evaluate(s, page, listing, e.now())
}

// Evaluate is the pure part of Decide: given a settings snapshot, the agent
// listing and the current instant it returns the decision.
func (e *Engine) Evaluate(s domain.Settings, page domain.PageContext, listing domain.Listing, now time.Time) domain.Decision {
	if !s.IsActive() {
		return domain.HiddenDecision()
	}
	eligible := IsWidgetEligible(s, page, e.ext.Blocker)
	if !eligible {
		return domain.HiddenDecision()
	}

	scheduleActive := e.ext.Scheduler == nil || e.ext.Scheduler.IsScheduleActive(s, now)

	presence := ResolvePresence(listing.HasAgents(), s.GlobalStatus, scheduleActive, e.ext.Present)
	template := SelectTemplate(eligible, presence, s.ContactFormStatus.IsOn(), e.ext.Present)
	typebot := e.typebotActive(s)

	return domain.Decision{
		Template: template,
		Presence: presence,
		Eligible: true,
		Data:     buildTemplateData(template, s, listing, typebot),
		Style:    RenderStyle(presence, s, typebot),
	}
}

func (e *Engine) typebotActive(s domain.Settings) bool {
	return e.ext.Present && s.TypebotStatus.IsOn() && strings.TrimSpace(s.TypebotLink) != ""
}

var templateTitles = map[domain.TemplateID]string{
	domain.TemplateOnline:      "Online",
	domain.TemplateAway:        "Away",
	domain.TemplateOffline:     "Offline",
	domain.TemplateContactForm: "Offline",
}

func buildTemplateData(template domain.TemplateID, s domain.Settings, listing domain.Listing, typebot bool) *domain.TemplateData {
	data := &domain.TemplateData{
		Title:           templateTitles[template],
		ButtonText:      s.Texts.ButtonText,
		Icon:            s.Icon,
		Shape:           s.Shape,
		StartChatMethod: s.StartChatMethod,
		Listing:         domain.Listing{Layout: listing.Layout},
		Credit:          s.Credit.IsOn(),
	}

	switch template {
	case domain.TemplateOnline:
		data.Subtitle = s.Texts.OnlineSubtitle
		data.Listing = listing
	case domain.TemplateAway:
		data.Subtitle = s.Texts.AwaySubtitle
		data.Listing = listing
	default:
		data.Subtitle = s.Texts.OfflineSubtitle
		data.OfflineMessage = s.Texts.OfflineMessage
	}

	if typebot {
		data.Typebot = &domain.TypebotData{URL: typebotViewerURL + strings.TrimPrefix(strings.TrimSpace(s.TypebotLink), "/")}
	}
	return data
}
