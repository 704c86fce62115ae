package application

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/AzielCF/az-chatbox/agents/domain"
	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp"
)

const AvatarSize = 96

// AvatarStore writes normalized avatar images under a statics directory.
type AvatarStore struct {
	dir    string
	prefix string
}

// NewAvatarStore stores files in dir; returned paths are prefix + "/" + file name.
func NewAvatarStore(dir, prefix string) *AvatarStore {
	return &AvatarStore{dir: dir, prefix: prefix}
}

// Save decodes src, crops it to a centered square of AvatarSize pixels and
// stores it as PNG. It returns the path relative to the statics root.
func (s *AvatarStore) Save(agentID string, src io.Reader) (string, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidAvatar, err)
	}

	thumb := imaging.Fill(img, AvatarSize, AvatarSize, imaging.Center, imaging.Lanczos)

	name := agentID + ".png"
	if err := imaging.Save(thumb, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("failed to save avatar: %w", err)
	}
	logrus.Debugf("[AGENTS] Stored avatar for %s", agentID)

	return s.prefix + "/" + name, nil
}
