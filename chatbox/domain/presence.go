package domain

type PresenceState string

const (
	PresenceOnline  PresenceState = "online"
	PresenceAway    PresenceState = "away"
	PresenceOffline PresenceState = "offline"
)

type TemplateID string

const (
	TemplateHidden      TemplateID = "hidden"
	TemplateOnline      TemplateID = "online"
	TemplateAway        TemplateID = "away"
	TemplateOffline     TemplateID = "offline"
	TemplateContactForm TemplateID = "contact-form"
)
