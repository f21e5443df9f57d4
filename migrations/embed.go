// Package migrations embeds the SQL migration files for the message archive schema.
package migrations

import "embed"

// FS holds the embedded SQL migration files applied at startup.
//
//go:embed *.sql
var FS embed.FS
