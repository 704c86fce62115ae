package domain

import "time"

// AgentStatus is the per-agent availability set by the site admin.
type AgentStatus string

const (
	StatusOnline  AgentStatus = "online"
	StatusAway    AgentStatus = "away"
	StatusOffline AgentStatus = "offline"
)

// Agent is a support contact shown in the chatbox listing.
type Agent struct {
	ID                       string      `json:"id"`
	Name                     string      `json:"name"`
	JobTitle                 string      `json:"job_title,omitempty"`
	WelcomeMessage           string      `json:"welcome_message,omitempty"`
	WhatsAppID               string      `json:"whatsapp_id,omitempty"`
	WhatsAppPrefilledMessage string      `json:"whatsapp_prefilled_message,omitempty"`
	FacebookID               string      `json:"facebook_id,omitempty"`
	TelegramID               string      `json:"telegram_id,omitempty"`
	PhoneNumber              string      `json:"phone_number,omitempty"`
	PhoneOnlyOnMobile        bool        `json:"phone_only_on_mobile"`
	Email                    string      `json:"email,omitempty"`
	Status                   AgentStatus `json:"status"`
	AvatarPath               string      `json:"avatar_path,omitempty"`
	Ordering                 int         `json:"ordering"`
	Enabled                  bool        `json:"enabled"`
	CreatedAt                time.Time   `json:"created_at"`
	UpdatedAt                time.Time   `json:"updated_at"`
}

func (a *Agent) IsOffline() bool {
	return a.Status == StatusOffline
}
