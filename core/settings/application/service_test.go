package application

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	chatboxDomain "github.com/AzielCF/az-chatbox/chatbox/domain"
	"github.com/AzielCF/az-chatbox/core/settings/domain"
	"github.com/AzielCF/az-chatbox/core/settings/infrastructure"
	pkgError "github.com/AzielCF/az-chatbox/pkg/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *SettingsService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "settings.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	svc := NewSettingsService(infrastructure.NewGlobalSettingsGormRepository(db))
	require.NoError(t, svc.InitSchema(context.Background()))
	return svc
}

type failingRepo struct{ domain.ISettingsRepository }

func (failingRepo) List(context.Context) (map[string]string, error) {
	return nil, errors.New("storage down")
}

func TestLoad_EmptyStoreUsesDefaults(t *testing.T) {
	s := newTestService(t).Load(context.Background())

	assert.True(t, s.IsActive())
	assert.Equal(t, chatboxDomain.StatusOnline, s.GlobalStatus)
	assert.Equal(t, chatboxDomain.LayoutModern, s.Layout)
	assert.Equal(t, chatboxDomain.ShapeRound, s.Shape)
	assert.Equal(t, 9999999, s.ZIndex)
	assert.Equal(t, "#1e73be", s.Colors.Online.Theme)
	assert.Equal(t, chatboxDomain.DefaultChannelOrder, s.ChannelOrdering)
	assert.Empty(t, s.ExcludedPages)
	assert.Equal(t, chatboxDomain.DaySchedule{Enabled: true, Start: "00:00", End: "23:30"}, s.Schedule.Day(time.Wednesday))
}

func TestLoad_StorageFailureFallsBackToDefaults(t *testing.T) {
	svc := NewSettingsService(failingRepo{})
	s := svc.Load(context.Background())
	assert.Equal(t, "Chat Now", s.Texts.ButtonText)
}

func TestUpdate_ThenLoad(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	err := svc.Update(ctx, map[string]string{
		domain.KeyGlobalOnlineStatus:       "away",
		domain.KeyExcludedPages:            "12, 40 ,",
		domain.KeyChannelOrdering:          "email,phone",
		domain.ScheduleStatusKey("monday"): "off",
		domain.ScheduleStartKey("friday"):  "09:00",
		domain.KeyZIndex:                   " 10 ",
		domain.KeyCountryRestriction:       "us,CN",
	})
	require.NoError(t, err)

	s := svc.Load(ctx)
	assert.Equal(t, chatboxDomain.StatusAway, s.GlobalStatus)
	assert.Equal(t, []string{"12", "40"}, s.ExcludedPages)
	assert.Equal(t, []chatboxDomain.Channel{
		chatboxDomain.ChannelEmail, chatboxDomain.ChannelPhone,
		chatboxDomain.ChannelWhatsApp, chatboxDomain.ChannelMessenger, chatboxDomain.ChannelTelegram,
	}, s.ChannelOrdering)
	assert.False(t, s.Schedule.Day(time.Monday).Enabled)
	assert.Equal(t, "09:00", s.Schedule.Day(time.Friday).Start)
	assert.Equal(t, 10, s.ZIndex)
	assert.Equal(t, []string{"us", "CN"}, s.CountryRestriction)
}

func TestUpdate_RejectsInvalidValues(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	cases := map[string]map[string]string{
		"unknown key":   {"no_such_key": "x"},
		"read only":     {domain.KeyVersion: "9.9.9"},
		"bad color":     {domain.KeyButtonColor: "blue"},
		"bad enum":      {domain.KeyGlobalOnlineStatus: "busy"},
		"bad clock":     {domain.ScheduleEndKey("sunday"): "25:00"},
		"bad z-index":   {domain.KeyZIndex: "high"},
		"bad channel":   {domain.KeyChannelOrdering: "whatsapp,fax"},
		"bad country":   {domain.KeyCountryRestriction: "USA"},
		"bad timezone":  {domain.KeyTimezone: "Mars/Olympus"},
		"bad retention": {domain.KeyReportStorageDuration: "0-months"},
		"empty request": {},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			err := svc.Update(ctx, values)
			require.Error(t, err)
			var ve pkgError.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#727779", snap[domain.KeyButtonColor])
}

type rejectingWriteRepo struct{ domain.ISettingsRepository }

func (rejectingWriteRepo) SetMany(context.Context, map[string]string) error {
	return errors.New("disk full")
}

func TestUpdate_StoreFailureIsNotValidation(t *testing.T) {
	ctx := context.Background()
	base := newTestService(t)
	svc := NewSettingsService(rejectingWriteRepo{base.repo})

	err := svc.Update(ctx, map[string]string{
		domain.KeyGlobalOnlineStatus: "away",
		domain.KeyButtonColor:        "#000000",
	})
	require.Error(t, err)
	var ve pkgError.ValidationError
	assert.False(t, errors.As(err, &ve))

	s := base.Load(ctx)
	assert.Equal(t, chatboxDomain.StatusOnline, s.GlobalStatus)
}

func TestReset_RestoresDefaultsAndKeepsInstallMarkers(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, err := svc.SeedDefaults(ctx, "2.0.0")
	require.NoError(t, err)
	require.NoError(t, svc.Update(ctx, map[string]string{domain.KeyLayout: "direct"}))

	require.NoError(t, svc.Reset(ctx))

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "modern", snap[domain.KeyLayout])
	assert.Equal(t, "2.0.0", snap[domain.KeyVersion])
	assert.NotEmpty(t, snap[domain.KeyActivationTime])
}

func TestSeedDefaults_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }

	n, err := svc.SeedDefaults(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, len(domain.Defaults)-1, n)

	require.NoError(t, svc.Update(ctx, map[string]string{domain.KeyButtonText: "Talk to us"}))
	svc.now = func() time.Time { return time.Unix(1800000000, 0) }

	n, err = svc.SeedDefaults(ctx, "1.1.0")
	require.NoError(t, err)
	assert.Zero(t, n)

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Talk to us", snap[domain.KeyButtonText])
	assert.Equal(t, "1.1.0", snap[domain.KeyVersion])
	assert.Equal(t, "1700000000", snap[domain.KeyActivationTime])
}

func TestDecode_InvalidZIndexFallsBack(t *testing.T) {
	s := Decode(map[string]string{domain.KeyZIndex: "abc"})
	assert.Equal(t, 9999999, s.ZIndex)
}
