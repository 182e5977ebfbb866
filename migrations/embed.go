// Package migrations embeds the database schema so the server binary can
// apply it at startup without shipping separate SQL files.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
