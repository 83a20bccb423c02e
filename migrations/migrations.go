// Package migrations embeds the goose migration files so binaries can apply
// them without a copy of the source tree.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
