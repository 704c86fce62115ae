package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPersistentServerID_Override(t *testing.T) {
	assert.Equal(t, "node-a", GetPersistentServerID("node-a", t.TempDir()))
}

func TestGetPersistentServerID_ReadsStoredID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".server_id"), []byte("  stored-id \n"), 0644))

	assert.Equal(t, "stored-id", GetPersistentServerID("", dir))
}

func TestGetPersistentServerID_IsStable(t *testing.T) {
	dir := t.TempDir()
	first := GetPersistentServerID("", dir)
	second := GetPersistentServerID("", dir)

	assert.True(t, strings.HasPrefix(first, "chatbox-"))
	assert.Equal(t, first, second)
}

func TestGetAvatarStoragePath_CreatesFolder(t *testing.T) {
	dir := t.TempDir()
	path, err := GetAvatarStoragePath(dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, filepath.Join(dir, "avatars"), path)
}
