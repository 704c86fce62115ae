package rest

import "github.com/AzielCF/az-chatbox/agents/domain"

// AgentRequest is the body of create and update calls.
type AgentRequest struct {
	Name                     string `json:"name"`
	JobTitle                 string `json:"job_title"`
	WelcomeMessage           string `json:"welcome_message"`
	WhatsAppID               string `json:"whatsapp_id"`
	WhatsAppPrefilledMessage string `json:"whatsapp_prefilled_message"`
	FacebookID               string `json:"facebook_id"`
	TelegramID               string `json:"telegram_id"`
	PhoneNumber              string `json:"phone_number"`
	PhoneOnlyOnMobile        bool   `json:"phone_only_on_mobile"`
	Email                    string `json:"email"`
	Status                   string `json:"status"`
	Ordering                 int    `json:"ordering"`
	Enabled                  *bool  `json:"enabled"`
}

func (r AgentRequest) apply(a *domain.Agent) {
	a.Name = r.Name
	a.JobTitle = r.JobTitle
	a.WelcomeMessage = r.WelcomeMessage
	a.WhatsAppID = r.WhatsAppID
	a.WhatsAppPrefilledMessage = r.WhatsAppPrefilledMessage
	a.FacebookID = r.FacebookID
	a.TelegramID = r.TelegramID
	a.PhoneNumber = r.PhoneNumber
	a.PhoneOnlyOnMobile = r.PhoneOnlyOnMobile
	a.Email = r.Email
	a.Status = domain.AgentStatus(r.Status)
	a.Ordering = r.Ordering
	if r.Enabled != nil {
		a.Enabled = *r.Enabled
	}
}
