package domain

import (
	"context"
	"time"
)

// Toggle keeps the stored "on"/"off" string so that callers can distinguish
// "must be on" checks from "must not be off" checks.
type Toggle string

const (
	ToggleOn  Toggle = "on"
	ToggleOff Toggle = "off"
)

func (t Toggle) IsOn() bool  { return t == ToggleOn }
func (t Toggle) IsOff() bool { return t == ToggleOff }

type GlobalStatus string

const (
	StatusOnline  GlobalStatus = "online"
	StatusAway    GlobalStatus = "away"
	StatusOffline GlobalStatus = "offline"
)

type Layout string

const (
	LayoutDirect Layout = "direct"
	LayoutModern Layout = "modern"
)

type Shape string

const (
	ShapeRound     Shape = "round"
	ShapeRectangle Shape = "rectangle"
)

type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

type Animation string

const (
	AnimationNone    Animation = "none"
	AnimationFadeIn  Animation = "fadein"
	AnimationSlideUp Animation = "slideup"
)

const (
	ActivationActive   = "active"
	VisibilityLoggedIn = "loggedin"
	OfflineAgentsShow  = "show"
	WeeklyReportActive = "active"
)

// Palette is the pair of colors that changes with the presence state.
type Palette struct {
	Theme string
	Icon  string
}

type Colors struct {
	Online               Palette
	Away                 Palette
	Offline              Palette
	Background           string
	Title                string
	Subtitle             string
	Button               string
	ButtonText           string
	Bubble               string
	ContactFormNotice    string
	RecaptchaNotice      string
	RecaptchaLink        string
	Credit               string
	AgentFieldBackground string
	AgentFieldHover      string
	AgentName            string
	AgentJobTitle        string
	AgentChannel         string
}

// Palette returns the theme/icon pair used while rendering the given presence.
func (c Colors) Palette(p PresenceState) Palette {
	switch p {
	case PresenceOnline:
		return c.Online
	case PresenceAway:
		return c.Away
	default:
		return c.Offline
	}
}

type Texts struct {
	OnlineSubtitle  string
	AwaySubtitle    string
	OfflineSubtitle string
	OfflineMessage  string
	ButtonText      string
}

// Settings is the typed snapshot of every chatbox option, decoded once per request.
type Settings struct {
	Activation      string
	GlobalStatus    GlobalStatus
	Timezone        string
	Schedule        WeeklySchedule
	Texts           Texts
	Layout          Layout
	Shape           Shape
	Position        Position
	Icon            string
	Animation       Animation
	StartChatMethod string
	ZIndex          int
	Colors          Colors
	ChannelOrdering []Channel

	ShowOnDesktop     Toggle
	ShowOnMobile      Toggle
	ShowOnPost        Toggle
	ShowOnSearch      Toggle
	ShowOn404         Toggle
	ShowOnWooCommerce Toggle
	ExcludedPages     []string
	UserVisibility    string
	ShowOfflineAgents string

	ActivateCountryBlock Toggle
	CountryRestriction   []string
	ContactFormStatus    Toggle
	TypebotStatus        Toggle
	TypebotLink          string
	GoogleAnalytics      Toggle
	Credit               Toggle

	ReportStorageDuration string
	ReceiveWeeklyReport   string
}

func (s Settings) IsActive() bool {
	return s.Activation == ActivationActive
}

// SettingsSource yields the settings snapshot for one render. It never fails;
// implementations fall back to defaults.
type SettingsSource interface {
	Load(ctx context.Context) Settings
}

// DaySchedule is a same-day availability window in "HH:MM" wall-clock time.
type DaySchedule struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// WeeklySchedule is indexed by time.Weekday.
type WeeklySchedule [7]DaySchedule

func (w WeeklySchedule) Day(d time.Weekday) DaySchedule {
	return w[d]
}
