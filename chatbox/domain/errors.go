package domain

import "errors"

var (
	// ErrMissingSetting is logged when a key is absent and its default is used.
	ErrMissingSetting = errors.New("setting missing, default applied")

	// ErrInvalidScheduleEntry marks an unparsable schedule window; it never matches.
	ErrInvalidScheduleEntry = errors.New("invalid schedule entry")

	// ErrExtensionUnavailable is logged when the extension is requested but not installed.
	ErrExtensionUnavailable = errors.New("extension unavailable")
)
