package migrations

import "embed"

// FS contains the embedded SQLite migrations for match recording.
//
//go:embed *.sql
var FS embed.FS
