package validations

import (
	"context"
	"testing"

	agentDomain "github.com/AzielCF/az-chatbox/agents/domain"
	settingsDomain "github.com/AzielCF/az-chatbox/core/settings/domain"
	pkgError "github.com/AzielCF/az-chatbox/pkg/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateSettingsUpdate_AcceptsDefaults(t *testing.T) {
	values := make(map[string]string, len(settingsDomain.Defaults))
	for k, v := range settingsDomain.Defaults {
		if k != settingsDomain.KeyVersion {
			values[k] = v
		}
	}
	assert.NoError(t, ValidateSettingsUpdate(context.Background(), values))
}

func TestValidateSettingsUpdate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]string
	}{
		{"unknown key", map[string]string{"foo": "bar"}},
		{"activation time", map[string]string{settingsDomain.KeyActivationTime: "1"}},
		{"hex color", map[string]string{settingsDomain.KeyTitleColor: "#ggg"}},
		{"empty color", map[string]string{settingsDomain.KeyTitleColor: ""}},
		{"toggle", map[string]string{settingsDomain.KeyShowOnMobile: "yes"}},
		{"clock", map[string]string{settingsDomain.ScheduleStartKey("monday"): "9:5"}},
		{"typebot link", map[string]string{settingsDomain.KeyTypebotLink: "bot\"><script>"}},
		{"icon", map[string]string{settingsDomain.KeyIcon: "a;b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSettingsUpdate(context.Background(), tc.values)
			assert.IsType(t, pkgError.ValidationError(""), err)
		})
	}
}

func TestValidateSettingsUpdate_RejectsEmptyChoice(t *testing.T) {
	keys := []string{
		settingsDomain.KeyChatboxActivation,
		settingsDomain.KeyGlobalOnlineStatus,
		settingsDomain.KeyTimezone,
		settingsDomain.KeyLayout,
		settingsDomain.KeyStyle,
		settingsDomain.KeyPosition,
		settingsDomain.KeyAnimation,
		settingsDomain.KeyStartChatMethod,
		settingsDomain.KeyUserVisibility,
		settingsDomain.KeyShowOfflineAgents,
		settingsDomain.KeyReportStorageDuration,
		settingsDomain.KeyReceiveWeeklyReport,
		settingsDomain.ScheduleStatusKey("monday"),
	}
	keys = append(keys, toggleKeys...)

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			err := ValidateSettingsUpdate(context.Background(), map[string]string{key: ""})
			assert.IsType(t, pkgError.ValidationError(""), err)
		})
	}
}

func TestValidateSettingsUpdate_AllowsEmptyLists(t *testing.T) {
	err := ValidateSettingsUpdate(context.Background(), map[string]string{
		settingsDomain.KeyCountryRestriction: "",
		settingsDomain.KeyExcludedPages:      "",
		settingsDomain.KeyTimezone:           "Europe/Madrid",
	})
	assert.NoError(t, err)
}

func TestValidateAgent(t *testing.T) {
	valid := agentDomain.Agent{
		Name:        "Ana",
		WhatsAppID:  "51987654321",
		TelegramID:  "ana_support",
		PhoneNumber: "+51 987 654 321",
		Email:       "ana@example.com",
		Status:      agentDomain.StatusOnline,
	}
	assert.NoError(t, ValidateAgent(context.Background(), &valid))

	noName := valid
	noName.Name = ""
	assert.Error(t, ValidateAgent(context.Background(), &noName))

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, ValidateAgent(context.Background(), &badEmail))

	badStatus := valid
	badStatus.Status = "busy"
	assert.Error(t, ValidateAgent(context.Background(), &badStatus))

	badWhatsApp := valid
	badWhatsApp.WhatsAppID = "+51 987"
	assert.IsType(t, pkgError.ValidationError(""), ValidateAgent(context.Background(), &badWhatsApp))
}
