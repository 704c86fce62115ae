package application

import (
	"context"
	"net/url"
	"strings"

	"github.com/AzielCF/az-chatbox/agents/domain"
	chatboxDomain "github.com/AzielCF/az-chatbox/chatbox/domain"
)

// Directory builds the chatbox agent listing from the agent repository.
type Directory struct {
	repo          domain.AgentRepository
	avatarBaseURL string
}

// NewDirectory returns a directory whose avatar URLs are rooted at avatarBaseURL
// (e.g. "/statics").
func NewDirectory(repo domain.AgentRepository, avatarBaseURL string) *Directory {
	return &Directory{repo: repo, avatarBaseURL: strings.TrimSuffix(avatarBaseURL, "/")}
}

func (d *Directory) Listing(ctx context.Context, page chatboxDomain.PageContext, s chatboxDomain.Settings) (chatboxDomain.Listing, error) {
	enabled := true
	agents, err := d.repo.List(ctx, domain.AgentFilter{Enabled: &enabled})
	if err != nil {
		return chatboxDomain.Listing{}, err
	}

	showOffline := s.ShowOfflineAgents == chatboxDomain.OfflineAgentsShow
	visible := agents[:0:0]
	for _, a := range agents {
		if a.IsOffline() && !showOffline {
			continue
		}
		visible = append(visible, a)
	}

	order := s.ChannelOrdering
	if len(order) == 0 {
		order = chatboxDomain.DefaultChannelOrder
	}

	if s.Layout == chatboxDomain.LayoutDirect {
		return d.directListing(visible, order, page), nil
	}
	return d.modernListing(visible, order, page), nil
}

func (d *Directory) directListing(agents []*domain.Agent, order []chatboxDomain.Channel, page chatboxDomain.PageContext) chatboxDomain.Listing {
	listing := chatboxDomain.Listing{Layout: chatboxDomain.LayoutDirect}
	for _, ch := range order {
		out := chatboxDomain.ChannelOutput{Channel: ch, Entries: []chatboxDomain.ChannelEntry{}}
		for _, a := range agents {
			link, ok := ChannelLink(a, ch, page.IsMobile)
			if !ok {
				continue
			}
			out.Entries = append(out.Entries, chatboxDomain.ChannelEntry{
				AgentID:   a.ID,
				AgentName: a.Name,
				JobTitle:  a.JobTitle,
				AvatarURL: d.avatarURL(a),
				Link:      link,
				Offline:   a.IsOffline(),
			})
		}
		listing.Channels = append(listing.Channels, out)
	}
	return listing
}

func (d *Directory) modernListing(agents []*domain.Agent, order []chatboxDomain.Channel, page chatboxDomain.PageContext) chatboxDomain.Listing {
	listing := chatboxDomain.Listing{Layout: chatboxDomain.LayoutModern}
	for _, a := range agents {
		card := chatboxDomain.AgentCard{
			ID:             a.ID,
			Name:           a.Name,
			JobTitle:       a.JobTitle,
			WelcomeMessage: a.WelcomeMessage,
			AvatarURL:      d.avatarURL(a),
			Offline:        a.IsOffline(),
			Channels:       []chatboxDomain.ChannelLink{},
		}
		for _, ch := range order {
			if link, ok := ChannelLink(a, ch, page.IsMobile); ok {
				card.Channels = append(card.Channels, chatboxDomain.ChannelLink{Channel: ch, Link: link})
			}
		}
		listing.Agents = append(listing.Agents, card)
	}
	return listing
}

func (d *Directory) avatarURL(a *domain.Agent) string {
	if a.AvatarPath == "" {
		return ""
	}
	return d.avatarBaseURL + "/" + strings.TrimPrefix(a.AvatarPath, "/")
}

// ChannelLink returns the contact link for the agent on the given channel.
// The phone link is withheld from desktop visitors when the agent asked for it.
func ChannelLink(a *domain.Agent, ch chatboxDomain.Channel, mobile bool) (string, bool) {
	switch ch {
	case chatboxDomain.ChannelWhatsApp:
		if a.WhatsAppID == "" {
			return "", false
		}
		link := "https://wa.me/" + url.PathEscape(a.WhatsAppID)
		if msg := strings.TrimSpace(a.WhatsAppPrefilledMessage); msg != "" {
			link += "?text=" + url.QueryEscape(msg)
		}
		return link, true
	case chatboxDomain.ChannelMessenger:
		if a.FacebookID == "" {
			return "", false
		}
		return "https://m.me/" + url.PathEscape(a.FacebookID), true
	case chatboxDomain.ChannelTelegram:
		if a.TelegramID == "" {
			return "", false
		}
		return "https://t.me/" + url.PathEscape(a.TelegramID), true
	case chatboxDomain.ChannelPhone:
		if a.PhoneNumber == "" || (a.PhoneOnlyOnMobile && !mobile) {
			return "", false
		}
		return "tel:" + strings.ReplaceAll(a.PhoneNumber, " ", ""), true
	case chatboxDomain.ChannelEmail:
		if a.Email == "" {
			return "", false
		}
		return "mailto:" + a.Email, true
	}
	return "", false
}
