package repository

import (
	"context"
	"fmt"

	"github.com/fantravel1/cheapretreats-sub001/internal/database"
)

// Source kinds understood by Open.
const (
	KindEmbedded  = "embedded"
	KindFile      = "file"
	KindSurrealDB = "surrealdb"
)

// OpenOptions selects a definitions source.
type OpenOptions struct {
	Kind     string
	Path     string          // KindFile
	Database database.Config // KindSurrealDB
}

// Open builds the Source named by opts.Kind. The returned close function
// releases any connection the source holds and is never nil.
func Open(ctx context.Context, opts OpenOptions) (Source, func() error, error) {
	noop := func() error { return nil }

	switch opts.Kind {
	case KindEmbedded, "":
		return NewEmbeddedSource(), noop, nil

	case KindFile:
		src, err := NewFileSource(opts.Path)
		if err != nil {
			return nil, noop, err
		}
		return src, noop, nil

	case KindSurrealDB:
		db := database.NewSurrealDB(opts.Database)
		if err := db.Connect(ctx); err != nil {
			return nil, noop, fmt.Errorf("%w: %w", ErrSource, err)
		}
		return NewSurrealSource(db), db.Close, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown source kind %q", ErrSource, opts.Kind)
	}
}
