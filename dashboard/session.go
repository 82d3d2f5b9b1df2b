package dashboard

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// ProfileKey is the single persistent key the session cache holds.
const ProfileKey = "profile_id"

// SessionCache is the persistent client-side store. It survives restarts
// and is consulted before any selection-control fallback.
type SessionCache interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// Session owns the active profile id for one coordinator. It mirrors the
// cache so loaders get the id passed in instead of reading ambient state.
type Session struct {
	cache SessionCache

	mu     sync.RWMutex
	active string
}

// NewSession wraps cache.
func NewSession(cache SessionCache) *Session {
	return &Session{cache: cache}
}

// CachedProfile reads the persisted profile id. A read error is logged and
// reported as an empty cache.
func (s *Session) CachedProfile() string {
	id, err := s.cache.Get(ProfileKey)
	if err != nil {
		log.Warn().Err(err).Msg("[Cache] Failed to read cached profile id")
		return ""
	}
	return id
}

// Activate records id as the resolved active profile and persists it.
func (s *Session) Activate(id string) error {
	s.mu.Lock()
	s.active = id
	s.mu.Unlock()
	if err := s.cache.Set(ProfileKey, id); err != nil {
		return err
	}
	log.Debug().Str("profile_id", id).Msg("[Cache] Persisted active profile")
	return nil
}

// ActiveProfile is the id resolved by the last profile load, if any.
func (s *Session) ActiveProfile() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// MemoryCache is a process-local SessionCache.
type MemoryCache struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryCache creates an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{values: make(map[string]string)}
}

func (c *MemoryCache) Get(key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key], nil
}

func (c *MemoryCache) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}
