package application

import (
	"context"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"time"

	chatboxDomain "github.com/AzielCF/az-chatbox/chatbox/domain"
	"github.com/AzielCF/az-chatbox/core/settings/domain"
	"github.com/AzielCF/az-chatbox/validations"
	"github.com/sirupsen/logrus"
)

type SettingsService struct {
	repo domain.ISettingsRepository
	now  func() time.Time
}

func NewSettingsService(repo domain.ISettingsRepository) *SettingsService {
	return &SettingsService{repo: repo, now: time.Now}
}

func (s *SettingsService) InitSchema(ctx context.Context) error {
	return s.repo.InitSchema(ctx)
}

// Snapshot returns the effective values: defaults overlaid by whatever is stored.
func (s *SettingsService) Snapshot(ctx context.Context) (map[string]string, error) {
	out := maps.Clone(domain.Defaults)
	stored, err := s.repo.List(ctx)
	if err != nil {
		return out, err
	}
	for k, v := range stored {
		if domain.IsKnownKey(k) {
			out[k] = v
		}
	}
	return out, nil
}

// Load implements the chatbox settings source. Storage failures fall back to defaults.
func (s *SettingsService) Load(ctx context.Context) chatboxDomain.Settings {
	values, err := s.Snapshot(ctx)
	if err != nil {
		logrus.WithError(err).Warn("[SETTINGS] Failed to read stored settings, using defaults")
	}
	return Decode(values)
}

// Update validates and stores the given keys.
func (s *SettingsService) Update(ctx context.Context, values map[string]string) error {
	trimmed := make(map[string]string, len(values))
	for k, v := range values {
		trimmed[k] = strings.TrimSpace(v)
	}
	if err := validations.ValidateSettingsUpdate(ctx, trimmed); err != nil {
		return err
	}
	if err := s.repo.SetMany(ctx, trimmed); err != nil {
		return fmt.Errorf("failed to store settings: %w", err)
	}
	logrus.Infof("[SETTINGS] Updated %d setting(s)", len(trimmed))
	return nil
}

// Reset deletes every stored option so that defaults take over. The install
// markers (version and activation time) are kept.
func (s *SettingsService) Reset(ctx context.Context) error {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	deleted := 0
	for k := range stored {
		if k == domain.KeyActivationTime || k == domain.KeyVersion {
			continue
		}
		if err := s.repo.Delete(ctx, k); err != nil {
			return fmt.Errorf("failed to delete setting %s: %w", k, err)
		}
		deleted++
	}
	logrus.Infof("[SETTINGS] Reset %d stored setting(s) to defaults", deleted)
	return nil
}

// SeedDefaults writes defaults for keys not stored yet. The version is always
// refreshed and the activation time is recorded once.
func (s *SettingsService) SeedDefaults(ctx context.Context, version string) (int, error) {
	if err := s.repo.InitSchema(ctx); err != nil {
		return 0, err
	}
	stored, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	missing := make(map[string]string)
	for k, v := range domain.Defaults {
		if _, ok := stored[k]; ok || k == domain.KeyVersion {
			continue
		}
		missing[k] = v
	}
	if err := s.repo.SetMany(ctx, missing); err != nil {
		return 0, err
	}
	seeded := len(missing)

	if version == "" {
		version = domain.Defaults[domain.KeyVersion]
	}
	if err := s.repo.Set(ctx, domain.KeyVersion, version); err != nil {
		return seeded, err
	}
	if _, ok := stored[domain.KeyActivationTime]; !ok {
		ts := strconv.FormatInt(s.now().Unix(), 10)
		if err := s.repo.Set(ctx, domain.KeyActivationTime, ts); err != nil {
			return seeded, err
		}
	}
	return seeded, nil
}

// Decode turns a flat key/value map into a typed settings snapshot. Missing
// keys read as their defaults.
func Decode(values map[string]string) chatboxDomain.Settings {
	get := func(key string) string {
		if v, ok := values[key]; ok {
			return v
		}
		logrus.Debugf("[SETTINGS] %v: %s", chatboxDomain.ErrMissingSetting, key)
		return domain.Defaults[key]
	}
	toggle := func(key string) chatboxDomain.Toggle { return chatboxDomain.Toggle(get(key)) }

	zIndex, err := strconv.Atoi(get(domain.KeyZIndex))
	if err != nil {
		zIndex, _ = strconv.Atoi(domain.Defaults[domain.KeyZIndex])
	}

	var schedule chatboxDomain.WeeklySchedule
	for i, day := range domain.Weekdays {
		schedule[i] = chatboxDomain.DaySchedule{
			Enabled: get(domain.ScheduleStatusKey(day)) == string(chatboxDomain.ToggleOn),
			Start:   get(domain.ScheduleStartKey(day)),
			End:     get(domain.ScheduleEndKey(day)),
		}
	}

	return chatboxDomain.Settings{
		Activation:   get(domain.KeyChatboxActivation),
		GlobalStatus: chatboxDomain.GlobalStatus(get(domain.KeyGlobalOnlineStatus)),
		Timezone:     get(domain.KeyTimezone),
		Schedule:     schedule,
		Texts: chatboxDomain.Texts{
			OnlineSubtitle:  get(domain.KeyOnlineSubtitle),
			AwaySubtitle:    get(domain.KeyAwaySubtitle),
			OfflineSubtitle: get(domain.KeyOfflineSubtitle),
			OfflineMessage:  get(domain.KeyOfflineMessage),
			ButtonText:      get(domain.KeyButtonText),
		},
		Layout:          chatboxDomain.Layout(get(domain.KeyLayout)),
		Shape:           chatboxDomain.Shape(get(domain.KeyStyle)),
		Position:        chatboxDomain.Position(get(domain.KeyPosition)),
		Icon:            get(domain.KeyIcon),
		Animation:       chatboxDomain.Animation(get(domain.KeyAnimation)),
		StartChatMethod: get(domain.KeyStartChatMethod),
		ZIndex:          zIndex,
		Colors: chatboxDomain.Colors{
			Online:               chatboxDomain.Palette{Theme: get(domain.KeyOnlineThemeColor), Icon: get(domain.KeyOnlineIconColor)},
			Away:                 chatboxDomain.Palette{Theme: get(domain.KeyAwayThemeColor), Icon: get(domain.KeyAwayIconColor)},
			Offline:              chatboxDomain.Palette{Theme: get(domain.KeyOfflineThemeColor), Icon: get(domain.KeyOfflineIconColor)},
			Background:           get(domain.KeyBackgroundColor),
			Title:                get(domain.KeyTitleColor),
			Subtitle:             get(domain.KeySubtitleColor),
			Button:               get(domain.KeyButtonColor),
			ButtonText:           get(domain.KeyButtonTextColor),
			Bubble:               get(domain.KeyBubbleBackgroundColor),
			ContactFormNotice:    get(domain.KeyContactFormNoticeColor),
			RecaptchaNotice:      get(domain.KeyRecaptchaNoticeColor),
			RecaptchaLink:        get(domain.KeyRecaptchaLinkColor),
			Credit:               get(domain.KeyCreditTextColor),
			AgentFieldBackground: get(domain.KeyAgentFieldBackgroundColor),
			AgentFieldHover:      get(domain.KeyAgentFieldHoverColor),
			AgentName:            get(domain.KeyAgentNameTextColor),
			AgentJobTitle:        get(domain.KeyAgentJobTitleTextColor),
			AgentChannel:         get(domain.KeyAgentChannelTextColor),
		},
		ChannelOrdering: chatboxDomain.ParseChannelOrdering(get(domain.KeyChannelOrdering)),

		ShowOnDesktop:     toggle(domain.KeyShowOnDesktop),
		ShowOnMobile:      toggle(domain.KeyShowOnMobile),
		ShowOnPost:        toggle(domain.KeyShowOnPost),
		ShowOnSearch:      toggle(domain.KeyShowOnSearch),
		ShowOn404:         toggle(domain.KeyShowOn404),
		ShowOnWooCommerce: toggle(domain.KeyShowOnWooCommercePages),
		ExcludedPages:     splitList(get(domain.KeyExcludedPages)),
		UserVisibility:    get(domain.KeyUserVisibility),
		ShowOfflineAgents: get(domain.KeyShowOfflineAgents),

		ActivateCountryBlock: toggle(domain.KeyActivateCountryBlock),
		CountryRestriction:   splitList(get(domain.KeyCountryRestriction)),
		ContactFormStatus:    toggle(domain.KeyContactFormStatus),
		TypebotStatus:        toggle(domain.KeyTypebotStatus),
		TypebotLink:          get(domain.KeyTypebotLink),
		GoogleAnalytics:      toggle(domain.KeyGoogleAnalytics),
		Credit:               toggle(domain.KeyCredit),

		ReportStorageDuration: get(domain.KeyReportStorageDuration),
		ReceiveWeeklyReport:   get(domain.KeyReceiveWeeklyReport),
	}
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
