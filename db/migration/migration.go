// Package migration embeds the SQL schema migrations applied at startup.
package migration

import "embed"

// FS holds the goose SQL migration files.
//
//go:embed *.sql
var FS embed.FS
