package application

import "github.com/AzielCF/az-chatbox/chatbox/domain"

func SelectTemplate(eligible bool, presence domain.PresenceState, contactFormEnabled, extensionPresent bool) domain.TemplateID {
	if !eligible {
		return domain.TemplateHidden
	}
	switch presence {
	case domain.PresenceOnline:
		return domain.TemplateOnline
	case domain.PresenceAway:
		return domain.TemplateAway
	}
	if extensionPresent && contactFormEnabled {
		return domain.TemplateContactForm
	}
	return domain.TemplateOffline
}
