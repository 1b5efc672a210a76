package migrations

import "embed"

// FS contains embedded SQLite migrations for tray storage.
//
//go:embed *.sql
var FS embed.FS
