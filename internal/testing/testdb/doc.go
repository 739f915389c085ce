// Package testdb manages SurrealDB namespaces for tests.
//
// # Setup
//
//	tdb := testdb.New(t) // unique namespace, migrations applied
//	defer tdb.Close()    // removes the namespace
//
// Connection settings come from TEST_DB_HOST, TEST_DB_PORT, TEST_DB_USER and
// TEST_DB_PASSWORD. Set TEST_DB_SKIP to skip database tests outright; they
// are also skipped when the server cannot be reached.
//
// # Migrations
//
// Every *.surql file in the nearest migrations/ directory is applied in name
// order. RETREATS_ROOT points at the repository root when tests run from
// elsewhere.
package testdb
