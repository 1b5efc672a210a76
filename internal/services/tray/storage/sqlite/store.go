// Package sqlite provides a SQLite-backed tray settings store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/dicetray/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/dicetray/internal/services/tray/storage"
	"github.com/louisbranch/dicetray/internal/services/tray/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const settingsRowID = 1

// Store persists tray settings in SQLite.
type Store struct {
	sqlDB *sql.DB
	clock func() time.Time
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite settings store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, clock: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetSettings returns the stored tray settings.
func (s *Store) GetSettings(ctx context.Context) (storage.Settings, error) {
	if err := ctx.Err(); err != nil {
		return storage.Settings{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Settings{}, fmt.Errorf("storage is not configured")
	}

	var (
		settings  storage.Settings
		updatedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT unit_count, default_value, sides, updated_at
		   FROM tray_settings
		  WHERE id = ?`,
		settingsRowID,
	).Scan(&settings.UnitCount, &settings.DefaultValue, &settings.Sides, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Settings{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Settings{}, fmt.Errorf("get tray settings: %w", err)
	}
	settings.UpdatedAt = fromMillis(updatedAt)
	return settings, nil
}

// PutSettings upserts the tray settings row.
func (s *Store) PutSettings(ctx context.Context, settings storage.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if settings.UnitCount < 0 {
		return fmt.Errorf("unit count must not be negative")
	}
	if settings.Sides < 2 {
		return fmt.Errorf("sides must be at least 2")
	}
	updatedAt := settings.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = s.clock()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO tray_settings (id, unit_count, default_value, sides, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   unit_count = excluded.unit_count,
		   default_value = excluded.default_value,
		   sides = excluded.sides,
		   updated_at = excluded.updated_at`,
		settingsRowID,
		settings.UnitCount,
		settings.DefaultValue,
		settings.Sides,
		toMillis(updatedAt),
	)
	if err != nil {
		return fmt.Errorf("put tray settings: %w", err)
	}
	return nil
}
