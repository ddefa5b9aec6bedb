// Package scripts embeds the versioned SQL migrations into the binary.
package scripts

import "embed"

// Goose holds goose migrations under goose/<dialect>.
//
//go:embed goose/mysql/*.sql goose/sqlite/*.sql
var Goose embed.FS

// Migrate holds golang-migrate up/down pairs for MySQL.
//
//go:embed migrate/*.sql
var Migrate embed.FS
