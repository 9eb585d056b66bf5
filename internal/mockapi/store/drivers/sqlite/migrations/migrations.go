// Package migrations embeds the SQL schema of the development backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
