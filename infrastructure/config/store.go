package config

import (
	"sync/atomic"

	domainconfig "mhtrends-backend/domain/config"
)

// SettingsStore holds the live dashboard rules. Readers get an immutable
// snapshot; reloads swap the whole snapshot.
type SettingsStore struct {
	current atomic.Pointer[domainconfig.DomainConfig]
}

// NewSettingsStore creates a store seeded with initial
func NewSettingsStore(initial *domainconfig.DomainConfig) *SettingsStore {
	s := &SettingsStore{}
	s.current.Store(initial)
	return s
}

// Current returns the active snapshot
func (s *SettingsStore) Current() *domainconfig.DomainConfig {
	return s.current.Load()
}

// Store replaces the active snapshot
func (s *SettingsStore) Store(cfg *domainconfig.DomainConfig) {
	s.current.Store(cfg)
}
