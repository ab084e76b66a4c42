// Package migrations embeds the SQL migration files so they can be
// applied through the goose programmatic API at server startup and in
// integration tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Embedding means the schema and the running code are always in sync —
// no filesystem path to get wrong at runtime.
//
//go:embed *.sql
var FS embed.FS
