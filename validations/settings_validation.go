package validations

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	chatboxDomain "github.com/AzielCF/az-chatbox/chatbox/domain"
	settingsDomain "github.com/AzielCF/az-chatbox/core/settings/domain"
	pkgError "github.com/AzielCF/az-chatbox/pkg/error"
	"github.com/AzielCF/az-chatbox/pkg/timeutils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	toggleRules    = oneOf("on", "off")
	retentionRegex = regexp.MustCompile(`^([1-9][0-9]*-months|forever)$`)
	readOnlyKeys   = map[string]bool{settingsDomain.KeyVersion: true, settingsDomain.KeyActivationTime: true}
)

var colorKeys = []string{
	settingsDomain.KeyOnlineThemeColor, settingsDomain.KeyOnlineIconColor,
	settingsDomain.KeyAwayThemeColor, settingsDomain.KeyAwayIconColor,
	settingsDomain.KeyOfflineThemeColor, settingsDomain.KeyOfflineIconColor,
	settingsDomain.KeyBackgroundColor, settingsDomain.KeyTitleColor, settingsDomain.KeySubtitleColor,
	settingsDomain.KeyButtonColor, settingsDomain.KeyButtonTextColor, settingsDomain.KeyBubbleBackgroundColor,
	settingsDomain.KeyContactFormNoticeColor, settingsDomain.KeyRecaptchaNoticeColor,
	settingsDomain.KeyRecaptchaLinkColor, settingsDomain.KeyCreditTextColor,
	settingsDomain.KeyAgentFieldBackgroundColor, settingsDomain.KeyAgentFieldHoverColor,
	settingsDomain.KeyAgentNameTextColor, settingsDomain.KeyAgentJobTitleTextColor,
	settingsDomain.KeyAgentChannelTextColor,
}

var toggleKeys = []string{
	settingsDomain.KeyShowOnDesktop, settingsDomain.KeyShowOnMobile, settingsDomain.KeyShowOnPost,
	settingsDomain.KeyShowOnSearch, settingsDomain.KeyShowOn404, settingsDomain.KeyShowOnWooCommercePages,
	settingsDomain.KeyActivateCountryBlock, settingsDomain.KeyContactFormStatus,
	settingsDomain.KeyTypebotStatus, settingsDomain.KeyGoogleAnalytics, settingsDomain.KeyCredit,
}

var settingRules = buildSettingRules()

func buildSettingRules() map[string][]validation.Rule {
	rules := map[string][]validation.Rule{
		settingsDomain.KeyChatboxActivation:  oneOf("active", "inactive"),
		settingsDomain.KeyGlobalOnlineStatus: oneOf("online", "away", "offline"),
		settingsDomain.KeyTimezone:           {validation.Required, validation.By(timezoneRule)},

		settingsDomain.KeyOnlineSubtitle:  {validation.Length(0, 500)},
		settingsDomain.KeyAwaySubtitle:    {validation.Length(0, 500)},
		settingsDomain.KeyOfflineSubtitle: {validation.Length(0, 500)},
		settingsDomain.KeyOfflineMessage:  {validation.Length(0, 1000)},
		settingsDomain.KeyButtonText:      {validation.Length(0, 100)},

		settingsDomain.KeyLayout:          oneOf("direct", "modern"),
		settingsDomain.KeyStyle:           oneOf("round", "rectangle"),
		settingsDomain.KeyPosition:        oneOf("left", "right"),
		settingsDomain.KeyIcon:            {validation.Required, validation.Match(regexp.MustCompile(`^[a-zA-Z0-9_ -]+$`))},
		settingsDomain.KeyAnimation:       oneOf("none", "fadein", "slideup"),
		settingsDomain.KeyStartChatMethod: oneOf("_blank", "_self"),
		settingsDomain.KeyZIndex:          {validation.Required, is.Int},

		settingsDomain.KeyChannelOrdering:    {validation.By(channelOrderingRule)},
		settingsDomain.KeyExcludedPages:      {validation.Length(0, 2000)},
		settingsDomain.KeyUserVisibility:     oneOf("all", "loggedin"),
		settingsDomain.KeyShowOfflineAgents:  oneOf("show", "hide"),
		settingsDomain.KeyCountryRestriction: {validation.By(countryListRule)},

		settingsDomain.KeyTypebotLink: {validation.Length(0, 200), validation.Match(regexp.MustCompile(`^[a-zA-Z0-9/_.-]*$`))},

		settingsDomain.KeyReportStorageDuration: {validation.Required, validation.Match(retentionRegex)},
		settingsDomain.KeyReceiveWeeklyReport:   oneOf("active", "inactive"),
	}
	for _, key := range colorKeys {
		rules[key] = []validation.Rule{validation.Required, is.HexColor}
	}
	for _, key := range toggleKeys {
		rules[key] = toggleRules
	}
	for _, day := range settingsDomain.Weekdays {
		rules[settingsDomain.ScheduleStatusKey(day)] = toggleRules
		rules[settingsDomain.ScheduleStartKey(day)] = []validation.Rule{validation.Required, validation.By(clockRule)}
		rules[settingsDomain.ScheduleEndKey(day)] = []validation.Rule{validation.Required, validation.By(clockRule)}
	}
	return rules
}

// oneOf requires a non-empty value from the given set.
func oneOf(values ...interface{}) []validation.Rule {
	return []validation.Rule{validation.Required, validation.In(values...)}
}

// ValidateSettingsUpdate checks every submitted key against its rule set.
// Unknown and read-only keys are rejected.
func ValidateSettingsUpdate(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return pkgError.ValidationError("no settings to update")
	}

	errs := validation.Errors{}
	for key, value := range values {
		if readOnlyKeys[key] {
			errs[key] = errors.New("is read only")
			continue
		}
		rules, ok := settingRules[key]
		if !ok {
			errs[key] = settingsDomain.ErrUnknownKey
			continue
		}
		if err := validation.ValidateWithContext(ctx, value, rules...); err != nil {
			errs[key] = err
		}
	}

	if err := errs.Filter(); err != nil {
		return pkgError.ValidationError(err.Error())
	}
	return nil
}

func clockRule(value interface{}) error {
	s, _ := value.(string)
	if _, err := timeutils.ParseClock(s); err != nil {
		return errors.New("must be a time in HH:MM format")
	}
	return nil
}

func timezoneRule(value interface{}) error {
	s, _ := value.(string)
	if _, err := time.LoadLocation(s); err != nil {
		return fmt.Errorf("unknown timezone %q", s)
	}
	return nil
}

func channelOrderingRule(value interface{}) error {
	s, _ := value.(string)
	for _, name := range splitList(s) {
		if !chatboxDomain.Channel(name).Valid() {
			return fmt.Errorf("unknown channel %q", name)
		}
	}
	return nil
}

func countryListRule(value interface{}) error {
	s, _ := value.(string)
	for _, code := range splitList(s) {
		if err := validation.Validate(strings.ToUpper(code), is.CountryCode2); err != nil {
			return fmt.Errorf("invalid country code %q", code)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
