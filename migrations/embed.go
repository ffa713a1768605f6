package migrations

import "embed"

// FS holds the versioned schema files applied by golang-migrate at startup.
//
//go:embed *.sql
var FS embed.FS
