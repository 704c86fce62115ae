package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetAvatarStoragePath returns (and creates) the folder holding agent avatars under statics.
func GetAvatarStoragePath(staticsDir string) (string, error) {
	path := filepath.Join(staticsDir, "avatars")
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return path, nil
}
