package domain

import "time"

// ScheduleProvider decides whether business hours are currently active.
type ScheduleProvider interface {
	IsScheduleActive(settings Settings, now time.Time) bool
}

// AccessBlocker decides whether the visitor is blocked (e.g. by country).
type AccessBlocker interface {
	IsBlocked(settings Settings, page PageContext) bool
}

// Extension is the optional premium capability set. Present distinguishes a
// real extension from the no-op fallback because presence resolution differs.
type Extension struct {
	Present   bool
	Scheduler ScheduleProvider
	Blocker   AccessBlocker
}
