// Package sqlite persists the Cutter table in a SQLite database.
//
// It uses modernc.org/sqlite, a pure Go driver, so the binary
// cross-compiles without CGO. The schema is managed through versioned
// migrations embedded from the migrations/ directory; applied versions are
// recorded in schema_migrations.
//
// By default the database lives at ~/.marcassist/data/cutter.db.
package sqlite
