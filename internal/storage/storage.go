package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/eugenenazirov/scanner-map/internal/settings"
)

var (
	// ErrInvalidSettings indicates the initial settings tree failed validation.
	ErrInvalidSettings = errors.New("settings failed validation")
)

// Storage provides access to the settings tree shared by the HTTP handlers.
type Storage interface {
	Snapshot() settings.AppConfig
	ApplyGeocodingKeys(google, locationiq *string) settings.KeyUpdate
}

// MemoryStore owns a single settings tree and guards access with a RWMutex.
type MemoryStore struct {
	mu  sync.RWMutex
	cfg settings.AppConfig
}

// NewMemoryStore initialises storage with the built-in defaults.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cfg: settings.Default()}
}

// NewMemoryStoreFrom validates cfg and stores a private copy of it.
func NewMemoryStoreFrom(cfg settings.AppConfig) (*MemoryStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return &MemoryStore{cfg: cfg.Clone()}, nil
}

// Snapshot returns a defensive copy of the current settings.
func (s *MemoryStore) Snapshot() settings.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg.Clone()
}

// ApplyGeocodingKeys assigns provider keys that are still unset.
func (s *MemoryStore) ApplyGeocodingKeys(google, locationiq *string) settings.KeyUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cfg.ApplyGeocodingKeys(google, locationiq)
}
