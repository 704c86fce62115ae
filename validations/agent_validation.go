package validations

import (
	"context"
	"regexp"

	agentDomain "github.com/AzielCF/az-chatbox/agents/domain"
	pkgError "github.com/AzielCF/az-chatbox/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	whatsAppIDRegex = regexp.MustCompile(`^[0-9]{6,15}$`)
	handleRegex     = regexp.MustCompile(`^[a-zA-Z0-9._]{3,64}$`)
	phoneRegex      = regexp.MustCompile(`^\+?[0-9 ()-]{6,20}$`)
)

func ValidateAgent(ctx context.Context, agent *agentDomain.Agent) error {
	err := validation.ValidateStructWithContext(ctx, agent,
		validation.Field(&agent.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&agent.JobTitle, validation.Length(0, 100)),
		validation.Field(&agent.WelcomeMessage, validation.Length(0, 500)),
		validation.Field(&agent.WhatsAppID, validation.Match(whatsAppIDRegex)),
		validation.Field(&agent.WhatsAppPrefilledMessage, validation.Length(0, 500)),
		validation.Field(&agent.FacebookID, validation.Match(handleRegex)),
		validation.Field(&agent.TelegramID, validation.Match(handleRegex)),
		validation.Field(&agent.PhoneNumber, validation.Match(phoneRegex)),
		validation.Field(&agent.Email, is.EmailFormat),
		validation.Field(&agent.Status, validation.Required, validation.In(
			agentDomain.StatusOnline, agentDomain.StatusAway, agentDomain.StatusOffline,
		)),
		validation.Field(&agent.Ordering, validation.Min(0)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
