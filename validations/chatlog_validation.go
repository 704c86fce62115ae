package validations

import (
	"context"

	chatboxDomain "github.com/AzielCF/az-chatbox/chatbox/domain"
	chatlogDomain "github.com/AzielCF/az-chatbox/chatlog/domain"
	pkgError "github.com/AzielCF/az-chatbox/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ChannelContactForm and ChannelTypebot are recorded alongside the agent channels.
const (
	ChannelContactForm = "contact_form"
	ChannelTypebot     = "typebot"
)

func recordableChannels() []interface{} {
	out := make([]interface{}, 0, len(chatboxDomain.DefaultChannelOrder)+2)
	for _, ch := range chatboxDomain.DefaultChannelOrder {
		out = append(out, string(ch))
	}
	return append(out, ChannelContactForm, ChannelTypebot)
}

func ValidateChatLogEntry(ctx context.Context, entry *chatlogDomain.Entry) error {
	err := validation.ValidateStructWithContext(ctx, entry,
		validation.Field(&entry.ChatChannel, validation.Required, validation.In(recordableChannels()...)),
		validation.Field(&entry.ChatMethod, validation.Required, validation.In(
			chatlogDomain.MethodDirect, chatlogDomain.MethodModern,
			chatlogDomain.MethodContactForm, chatlogDomain.MethodTypebot,
		)),
		validation.Field(&entry.AgentID, validation.Length(0, 64)),
		validation.Field(&entry.Agent, validation.Length(0, 255)),
		validation.Field(&entry.IP, is.IP),
		validation.Field(&entry.Country, is.CountryCode2),
		validation.Field(&entry.ChatDate, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
