// Package fixtures provides directory definitions for tests.
//
// # In-memory
//
//	defs := fixtures.Definitions()
//	c, err := catalog.Build(defs)
//
// # Database
//
//	tdb := testdb.New(t)
//	defer tdb.Close()
//	fixtures.New(tdb.DB).SeedDefinitions(t, fixtures.Definitions())
//
// Optional string fields are left unset rather than stored as empty strings,
// matching how the migrations declare them.
package fixtures
