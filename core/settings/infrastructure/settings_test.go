package infrastructure

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/AzielCF/az-chatbox/core/settings/domain"
	"github.com/AzielCF/az-chatbox/infrastructure/valkey"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func exerciseRepository(t *testing.T, repo domain.ISettingsRepository) {
	ctx := context.Background()
	require.NoError(t, repo.InitSchema(ctx))

	val, err := repo.Get(ctx, domain.KeyLayout)
	require.NoError(t, err)
	assert.Empty(t, val)

	require.NoError(t, repo.Set(ctx, domain.KeyLayout, "direct"))
	require.NoError(t, repo.Set(ctx, domain.KeyLayout, " modern "))
	require.NoError(t, repo.Set(ctx, domain.KeyStyle, "round"))

	val, err = repo.Get(ctx, domain.KeyLayout)
	require.NoError(t, err)
	assert.Equal(t, "modern", val)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{domain.KeyLayout: "modern", domain.KeyStyle: "round"}, all)

	require.NoError(t, repo.Delete(ctx, domain.KeyStyle))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.SetMany(ctx, map[string]string{
		domain.KeyLayout:   "direct",
		domain.KeyPosition: "left",
	}))
	require.NoError(t, repo.SetMany(ctx, nil))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{domain.KeyLayout: "direct", domain.KeyPosition: "left"}, all)
}

func TestGormRepository(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "settings.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	exerciseRepository(t, NewGlobalSettingsGormRepository(db))
}

func TestGormRepository_SetManyRollsBack(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "settings.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	repo := NewGlobalSettingsGormRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.InitSchema(ctx))
	require.NoError(t, repo.Set(ctx, domain.KeyLayout, "modern"))

	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:fail_after_write", func(tx *gorm.DB) {
		_ = tx.AddError(errors.New("disk full"))
	}))

	err = repo.SetMany(ctx, map[string]string{
		domain.KeyLayout: "direct",
		domain.KeyStyle:  "round",
	})
	require.Error(t, err)

	require.NoError(t, db.Callback().Create().Remove("test:fail_after_write"))
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{domain.KeyLayout: "modern"}, all)
}

func TestValkeyRepository(t *testing.T) {
	vk, err := valkey.NewClient(valkey.Config{Address: "localhost:6379", KeyPrefix: "chatbox-test-" + uuid.NewString()})
	if err != nil {
		t.Skip("No valkey")
	}
	defer vk.Close()

	repo := NewValkeySettingsRepository(vk)
	t.Cleanup(func() {
		inner := vk.Inner()
		inner.Do(context.Background(), inner.B().Del().Key(repo.key).Build())
	})

	exerciseRepository(t, repo)
}
