package application

import (
	"context"
	"time"

	"github.com/AzielCF/az-chatbox/chatbox/domain"
)

func defaultSettings() domain.Settings {
	var week domain.WeeklySchedule
	for i := range week {
		week[i] = domain.DaySchedule{Enabled: true, Start: "00:00", End: "23:30"}
	}
	return domain.Settings{
		Activation:   domain.ActivationActive,
		GlobalStatus: domain.StatusOnline,
		Timezone:     "UTC",
		Schedule:     week,
		Texts: domain.Texts{
			OnlineSubtitle:  "Let's get started to chat with us!",
			AwaySubtitle:    "We are currently away!",
			OfflineSubtitle: "Thank you for getting in touch. We are currently out of the office.",
			OfflineMessage:  "Sorry, there is no agent available.",
			ButtonText:      "Chat Now",
		},
		Layout:          domain.LayoutModern,
		Shape:           domain.ShapeRound,
		Position:        domain.PositionRight,
		Icon:            "dashicons-format-chat",
		Animation:       domain.AnimationFadeIn,
		StartChatMethod: "_blank",
		ZIndex:          9999999,
		Colors: domain.Colors{
			Online:               domain.Palette{Theme: "#1e73be", Icon: "#fff"},
			Away:                 domain.Palette{Theme: "#ff6000", Icon: "#fff"},
			Offline:              domain.Palette{Theme: "#727779", Icon: "#fff"},
			Background:           "#fff",
			Title:                "#fff",
			Subtitle:             "#000",
			Button:               "#727779",
			ButtonText:           "#fff",
			Bubble:               "#f4f4f4",
			ContactFormNotice:    "#008000",
			RecaptchaNotice:      "#000",
			RecaptchaLink:        "#0000ff",
			Credit:               "#888",
			AgentFieldBackground: "#fff",
			AgentFieldHover:      "#dfdfdf",
			AgentName:            "#222",
			AgentJobTitle:        "#888",
			AgentChannel:         "#888",
		},
		ChannelOrdering:       domain.DefaultChannelOrder,
		ShowOnDesktop:         domain.ToggleOn,
		ShowOnMobile:          domain.ToggleOn,
		ShowOnPost:            domain.ToggleOn,
		ShowOnSearch:          domain.ToggleOn,
		ShowOn404:             domain.ToggleOn,
		ShowOnWooCommerce:     domain.ToggleOn,
		UserVisibility:        "all",
		ShowOfflineAgents:     "hide",
		ActivateCountryBlock:  domain.ToggleOff,
		ContactFormStatus:     domain.ToggleOff,
		TypebotStatus:         domain.ToggleOff,
		GoogleAnalytics:       domain.ToggleOff,
		Credit:                domain.ToggleOn,
		ReportStorageDuration: "24-months",
		ReceiveWeeklyReport:   "active",
	}
}

type staticSettings struct {
	s domain.Settings
}

func (f staticSettings) Load(context.Context) domain.Settings { return f.s }

type staticDirectory struct {
	listing domain.Listing
	err     error
	calls   int
}

func (f *staticDirectory) Listing(_ context.Context, _ domain.PageContext, s domain.Settings) (domain.Listing, error) {
	f.calls++
	if f.err != nil {
		return domain.Listing{}, f.err
	}
	l := f.listing
	if l.Layout == "" {
		l.Layout = s.Layout
	}
	return l, nil
}

type fixedSchedule bool

func (f fixedSchedule) IsScheduleActive(domain.Settings, time.Time) bool { return bool(f) }

type fixedBlocker bool

func (f fixedBlocker) IsBlocked(domain.Settings, domain.PageContext) bool { return bool(f) }

func oneAgent() domain.Listing {
	return domain.Listing{Layout: domain.LayoutModern, Agents: []domain.AgentCard{{
		ID:       "agent-1",
		Name:     "Ana",
		Channels: []domain.ChannelLink{{Channel: domain.ChannelWhatsApp, Link: "https://wa.me/51999999999"}},
	}}}
}
