package domain

import (
	"context"
	"strings"
)

type Channel string

const (
	ChannelWhatsApp  Channel = "whatsapp"
	ChannelMessenger Channel = "messenger"
	ChannelTelegram  Channel = "telegram"
	ChannelPhone     Channel = "phone"
	ChannelEmail     Channel = "email"
)

// DefaultChannelOrder is used for channels the configured ordering leaves out.
var DefaultChannelOrder = []Channel{ChannelWhatsApp, ChannelMessenger, ChannelTelegram, ChannelPhone, ChannelEmail}

func (c Channel) Valid() bool {
	for _, known := range DefaultChannelOrder {
		if c == known {
			return true
		}
	}
	return false
}

// ParseChannelOrdering reads a comma separated ordering. Unknown and duplicate
// names are dropped and missing channels are appended in default order.
func ParseChannelOrdering(raw string) []Channel {
	seen := make(map[Channel]bool, len(DefaultChannelOrder))
	out := make([]Channel, 0, len(DefaultChannelOrder))
	for _, part := range strings.Split(raw, ",") {
		c := Channel(strings.ToLower(strings.TrimSpace(part)))
		if !c.Valid() || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	for _, c := range DefaultChannelOrder {
		if !seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// ChannelEntry is one agent reachable through a channel.
type ChannelEntry struct {
	AgentID   string `json:"agent_id"`
	AgentName string `json:"agent_name"`
	JobTitle  string `json:"job_title,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Link      string `json:"link"`
	Offline   bool   `json:"offline"`
}

// ChannelOutput is the direct-layout block for one channel. No entries means
// the channel is disabled.
type ChannelOutput struct {
	Channel Channel        `json:"channel"`
	Entries []ChannelEntry `json:"entries"`
}

type ChannelLink struct {
	Channel Channel `json:"channel"`
	Link    string  `json:"link"`
}

// AgentCard is the modern-layout entry for one agent.
type AgentCard struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	JobTitle       string        `json:"job_title,omitempty"`
	WelcomeMessage string        `json:"welcome_message,omitempty"`
	AvatarURL      string        `json:"avatar_url,omitempty"`
	Offline        bool          `json:"offline"`
	Channels       []ChannelLink `json:"channels"`
}

type Listing struct {
	Layout   Layout          `json:"layout"`
	Channels []ChannelOutput `json:"channels,omitempty"`
	Agents   []AgentCard     `json:"agents,omitempty"`
}

// HasAgents reports whether at least one reachable, non-offline agent is listed.
func (l Listing) HasAgents() bool {
	if l.Layout == LayoutDirect {
		for _, out := range l.Channels {
			for _, e := range out.Entries {
				if !e.Offline {
					return true
				}
			}
		}
		return false
	}
	for _, card := range l.Agents {
		if !card.Offline && len(card.Channels) > 0 {
			return true
		}
	}
	return false
}

// AgentDirectory builds the agent listing for a page view.
type AgentDirectory interface {
	Listing(ctx context.Context, page PageContext, settings Settings) (Listing, error)
}
