// Package migrations embeds the SQL schema migrations for every
// supported storage backend. The migration runner consumes one dialect
// subdirectory at a time via fs.Sub.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
