// Package memory provides an in-process settings store.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/louisbranch/dicetray/internal/services/tray/storage"
)

// Store keeps tray settings in memory.
type Store struct {
	mu       sync.Mutex
	settings *storage.Settings
	clock    func() time.Time
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{clock: time.Now}
}

// GetSettings returns the stored settings or storage.ErrNotFound.
func (s *Store) GetSettings(ctx context.Context) (storage.Settings, error) {
	if err := ctx.Err(); err != nil {
		return storage.Settings{}, err
	}
	if s == nil {
		return storage.Settings{}, errors.New("settings store is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return storage.Settings{}, storage.ErrNotFound
	}
	return *s.settings, nil
}

// PutSettings replaces the stored settings.
func (s *Store) PutSettings(ctx context.Context, settings storage.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil {
		return errors.New("settings store is required")
	}
	if settings.UpdatedAt.IsZero() {
		settings.UpdatedAt = s.clock().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}
