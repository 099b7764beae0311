// Package migrations embeds the numbered SQL schema migrations.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
