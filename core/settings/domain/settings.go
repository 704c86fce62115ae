package domain

import (
	"context"
	"errors"
)

// Setting represents a dynamic configuration value stored in the database.
type Setting struct {
	Key   string
	Value string
}

// ISettingsRepository defines the contract for persisting dynamic settings.
type ISettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	// SetMany stores all values or none of them.
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, key string) error

	// List returns every stored key/value pair.
	List(ctx context.Context) (map[string]string, error)

	// InitSchema creates the necessary tables
	InitSchema(ctx context.Context) error
}

var ErrUnknownKey = errors.New("unknown setting key")

// Chatbox activation and presence
const (
	KeyVersion            = "version"
	KeyActivationTime     = "activation_time"
	KeyChatboxActivation  = "chatbox_activation"
	KeyGlobalOnlineStatus = "global_online_status"
	KeyTimezone           = "timezone"
)

// Texts
const (
	KeyOnlineSubtitle  = "chatbox_online_subtitle"
	KeyAwaySubtitle    = "chatbox_away_subtitle"
	KeyOfflineSubtitle = "chatbox_offline_subtitle"
	KeyOfflineMessage  = "offline_message"
	KeyButtonText      = "chatbox_button_text"
)

// Appearance
const (
	KeyLayout          = "chatbox_layout"
	KeyStyle           = "chatbox_style"
	KeyPosition        = "chatbox_position"
	KeyIcon            = "chatbox_icon"
	KeyAnimation       = "chatbox_animation"
	KeyStartChatMethod = "start_chat_method"
	KeyZIndex          = "chatbox_z_index"
)

// Colors
const (
	KeyOnlineThemeColor          = "chatbox_online_theme_color"
	KeyOnlineIconColor           = "chatbox_online_icon_color"
	KeyAwayThemeColor            = "chatbox_away_theme_color"
	KeyAwayIconColor             = "chatbox_away_icon_color"
	KeyOfflineThemeColor         = "chatbox_offline_theme_color"
	KeyOfflineIconColor          = "chatbox_offline_icon_color"
	KeyBackgroundColor           = "chatbox_background_color"
	KeyTitleColor                = "chatbox_title_color"
	KeySubtitleColor             = "chatbox_subtitle_color"
	KeyButtonColor               = "chatbox_button_color"
	KeyButtonTextColor           = "chatbox_button_text_color"
	KeyBubbleBackgroundColor     = "bubble_background_color"
	KeyContactFormNoticeColor    = "contact_form_notice_text_color"
	KeyRecaptchaNoticeColor      = "google_recaptcha_notice_text_color"
	KeyRecaptchaLinkColor        = "google_recaptcha_link_text_color"
	KeyCreditTextColor           = "credit_text_color"
	KeyAgentFieldBackgroundColor = "agent_field_background_color"
	KeyAgentFieldHoverColor      = "agent_field_hover_background_color"
	KeyAgentNameTextColor        = "agent_name_text_color"
	KeyAgentJobTitleTextColor    = "agent_job_title_text_color"
	KeyAgentChannelTextColor     = "agent_channel_text_color"
)

// Visibility
const (
	KeyChannelOrdering        = "channel_ordering"
	KeyShowOnDesktop          = "show_on_desktop"
	KeyShowOnMobile           = "show_on_mobile"
	KeyShowOnPost             = "show_on_post"
	KeyShowOnSearch           = "show_on_search"
	KeyShowOn404              = "show_on_404"
	KeyShowOnWooCommercePages = "show_on_woocommerce_pages"
	KeyExcludedPages          = "chatbox_exclude_pages"
	KeyUserVisibility         = "user_visibility"
	KeyShowOfflineAgents      = "show_offline_agents"
	KeyActivateCountryBlock   = "activate_country_block"
	KeyCountryRestriction     = "country_restriction"
)

// Extension features
const (
	KeyContactFormStatus = "contact_form_status"
	KeyTypebotStatus     = "typebot_status"
	KeyTypebotLink       = "typebot_link"
	KeyGoogleAnalytics   = "google_analytics"
	KeyCredit            = "credit"
)

// Chat log reporting
const (
	KeyReportStorageDuration = "report_storage_duration"
	KeyReceiveWeeklyReport   = "receive_weekly_report"
)

// Weekdays in time.Weekday order.
var Weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// ScheduleStatusKey, ScheduleStartKey and ScheduleEndKey name the flattened weekly schedule keys.
func ScheduleStatusKey(day string) string { return "schedule_" + day + "_status" }
func ScheduleStartKey(day string) string  { return "schedule_" + day + "_start" }
func ScheduleEndKey(day string) string    { return "schedule_" + day + "_end" }

// Defaults holds the value every known key reads as when nothing is stored.
var Defaults = buildDefaults()

func buildDefaults() map[string]string {
	d := map[string]string{
		KeyVersion:            "1.0.0",
		KeyChatboxActivation:  "active",
		KeyGlobalOnlineStatus: "online",
		KeyTimezone:           "UTC",

		KeyOnlineSubtitle:  "Let's get started to chat with us!",
		KeyAwaySubtitle:    "We are currently away!",
		KeyOfflineSubtitle: "Thank you for getting in touch. We are currently out of the office.",
		KeyOfflineMessage:  "Sorry, there is no agent available.",
		KeyButtonText:      "Chat Now",

		KeyLayout:          "modern",
		KeyStyle:           "round",
		KeyPosition:        "right",
		KeyIcon:            "dashicons-format-chat",
		KeyAnimation:       "fadein",
		KeyStartChatMethod: "_blank",
		KeyZIndex:          "9999999",

		KeyOnlineThemeColor:          "#1e73be",
		KeyOnlineIconColor:           "#fff",
		KeyAwayThemeColor:            "#ff6000",
		KeyAwayIconColor:             "#fff",
		KeyOfflineThemeColor:         "#727779",
		KeyOfflineIconColor:          "#fff",
		KeyBackgroundColor:           "#fff",
		KeyTitleColor:                "#fff",
		KeySubtitleColor:             "#000",
		KeyButtonColor:               "#727779",
		KeyButtonTextColor:           "#fff",
		KeyBubbleBackgroundColor:     "#f4f4f4",
		KeyContactFormNoticeColor:    "#008000",
		KeyRecaptchaNoticeColor:      "#000",
		KeyRecaptchaLinkColor:        "#0000ff",
		KeyCreditTextColor:           "#888",
		KeyAgentFieldBackgroundColor: "#fff",
		KeyAgentFieldHoverColor:      "#dfdfdf",
		KeyAgentNameTextColor:        "#222",
		KeyAgentJobTitleTextColor:    "#888",
		KeyAgentChannelTextColor:     "#888",

		KeyChannelOrdering:        "whatsapp,messenger,telegram,phone,email",
		KeyShowOnDesktop:          "on",
		KeyShowOnMobile:           "on",
		KeyShowOnPost:             "on",
		KeyShowOnSearch:           "on",
		KeyShowOn404:              "on",
		KeyShowOnWooCommercePages: "on",
		KeyExcludedPages:          "",
		KeyUserVisibility:         "all",
		KeyShowOfflineAgents:      "hide",
		KeyActivateCountryBlock:   "off",
		KeyCountryRestriction:     "",

		KeyContactFormStatus: "off",
		KeyTypebotStatus:     "off",
		KeyTypebotLink:       "",
		KeyGoogleAnalytics:   "off",
		KeyCredit:            "on",

		KeyReportStorageDuration: "24-months",
		KeyReceiveWeeklyReport:   "active",
	}

	for _, day := range Weekdays {
		d[ScheduleStatusKey(day)] = "on"
		d[ScheduleStartKey(day)] = "00:00"
		d[ScheduleEndKey(day)] = "23:30"
	}

	return d
}

// IsKnownKey reports whether key has a default (and therefore may be written).
func IsKnownKey(key string) bool {
	_, ok := Defaults[key]
	return ok || key == KeyActivationTime
}
