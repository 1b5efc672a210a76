// Package storage defines persistence contracts for dice tray settings.
//
// Only the tray's configuration is stored. Roll results are never persisted.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates no settings have been stored yet.
var ErrNotFound = errors.New("record not found")

// Settings is the persisted tray configuration.
type Settings struct {
	UnitCount    int
	DefaultValue int
	Sides        int
	UpdatedAt    time.Time
}

// SettingsStore persists the single tray configuration record.
type SettingsStore interface {
	GetSettings(ctx context.Context) (Settings, error)
	PutSettings(ctx context.Context, settings Settings) error
}
