package application

import "github.com/AzielCF/az-chatbox/chatbox/domain"

// ResolvePresence derives the presence state. Without the extension the global
// status applies directly; with it, online and away also require the schedule.
func ResolvePresence(hasAgents bool, status domain.GlobalStatus, scheduleActive, extensionPresent bool) domain.PresenceState {
	if !hasAgents {
		return domain.PresenceOffline
	}

	gated := !extensionPresent || scheduleActive
	switch {
	case status == domain.StatusOnline && gated:
		return domain.PresenceOnline
	case status == domain.StatusAway && gated:
		return domain.PresenceAway
	default:
		return domain.PresenceOffline
	}
}
