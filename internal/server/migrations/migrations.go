// Package migrations embeds the registry's goose SQL migrations; they are
// applied at startup by the repository manager.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
