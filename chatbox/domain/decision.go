package domain

type TypebotData struct {
	URL string `json:"url"`
}

// TemplateData is the bag of values the selected template renders.
type TemplateData struct {
	Title           string       `json:"title"`
	Subtitle        string       `json:"subtitle"`
	OfflineMessage  string       `json:"offline_message,omitempty"`
	ButtonText      string       `json:"button_text"`
	Icon            string       `json:"icon"`
	Shape           Shape        `json:"shape"`
	StartChatMethod string       `json:"start_chat_method"`
	Listing         Listing      `json:"listing"`
	Typebot         *TypebotData `json:"typebot,omitempty"`
	Credit          bool         `json:"credit"`
}

// Decision is the full outcome of one render.
type Decision struct {
	Template TemplateID    `json:"template"`
	Presence PresenceState `json:"presence,omitempty"`
	Eligible bool          `json:"eligible"`
	Data     *TemplateData `json:"data,omitempty"`
	Style    string        `json:"style"`
}

func HiddenDecision() Decision {
	return Decision{Template: TemplateHidden}
}
