package dashboard

import (
	"errors"

	"github.com/rs/zerolog/log"
)

// ErrNoActiveProfile means neither the cache nor the selection control
// named a profile.
var ErrNoActiveProfile = errors.New("no active profile")

const msgNoActiveProfile = "No active profile. Please create or select a profile."

// ResolveActiveProfile picks the active profile id. The cached id wins over
// the selection control even when stale: the cache holds the last
// server-confirmed profile while the control may not be populated yet.
func ResolveActiveProfile(cachedID, selectedID string) (string, bool) {
	if cachedID != "" {
		return cachedID, true
	}
	if selectedID != "" {
		return selectedID, true
	}
	return "", false
}

// ResolveProfile resolves the active profile from the session cache and the
// sink's selection control. When nothing is found it emits one error
// notification and returns ErrNoActiveProfile.
func (c *Coordinator) ResolveProfile() (string, error) {
	cached := c.session.CachedProfile()
	selected := c.sink.SelectedProfile()
	if id, ok := ResolveActiveProfile(cached, selected); ok {
		source := "cache"
		if cached == "" {
			source = "selection"
		}
		log.Debug().Str("profile_id", id).Str("source", source).Msg("[Sync] Resolved active profile")
		return id, nil
	}

	log.Error().Str("cached", cached).Str("selected", selected).Msg("[Sync] Profile selection diagnostics: nothing to resolve")
	c.notifier.Notify(msgNoActiveProfile, SeverityError)
	return "", ErrNoActiveProfile
}
