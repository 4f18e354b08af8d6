// Package registrar exposes assets shared by the commands, such as the
// embedded database migrations.
package registrar

import "embed"

// Migrations holds the goose SQL migrations under the "migrations" directory.
//
//go:embed migrations/*.sql
var Migrations embed.FS
