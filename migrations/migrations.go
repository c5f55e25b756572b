// Package migrations embeds the SQL migration files shipped with tempo.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
