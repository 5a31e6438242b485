// Package migrations bundles the goose SQL migrations into the binary.
package migrations

import "embed"

// FS holds every *.sql migration in version order.
//
//go:embed *.sql
var FS embed.FS
