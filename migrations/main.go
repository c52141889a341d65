// Package migrations holds the database schema migrations, which are embedded in
// the binary and applied with goose when the service starts.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
