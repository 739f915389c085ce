// Package repository loads directory definitions from their sources.
//
// Every source implements Source and returns raw model.Definitions; the
// catalog package validates and indexes them. Nothing in this package writes.
//
// # Sources
//
//   - EmbeddedSource: the default YAML dataset compiled into the binary
//   - FileSource: a YAML (.yaml, .yml) or TOML (.toml) file on disk
//   - SurrealSource: the location, retreat_type, need_category and retreat
//     tables of a SurrealDB database, ordered by their ordinal field
//
// # Errors
//
// Every failure to read or decode wraps ErrSource:
//
//	defs, err := src.Load(ctx)
//	if errors.Is(err, repository.ErrSource) {
//	    // keep serving the previous catalog
//	}
package repository
