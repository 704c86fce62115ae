package domain

import "errors"

var (
	ErrAgentNotFound = errors.New("agent not found")
	ErrInvalidAvatar = errors.New("avatar must be a PNG, JPEG, GIF or WebP image")
)
