// Package database provides read access to SurrealDB for the retreat
// directory.
//
// The directory never writes to the database in production. SurrealDB is one
// of the places catalog definitions can be loaded from; the repository
// package turns query results into model values.
//
// # Interface
//
//	type Database interface {
//	    Connect(ctx context.Context) error
//	    Close() error
//	    Ping(ctx context.Context) error
//	    Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)
//	    Execute(ctx context.Context, query string, vars map[string]interface{}) error
//	}
//
// Query returns one {status, result} map per statement. Execute exists for
// test seeding.
//
// # Error Types
//
//   - ErrConnection: connect, sign-in or namespace selection failed
//   - ErrQuery: a statement returned a non-OK status
//
// # Usage
//
//	db := database.NewSurrealDB(cfg)
//	if err := db.Connect(ctx); err != nil {
//	    return err
//	}
//	defer db.Close()
package database
