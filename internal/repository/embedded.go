package repository

import (
	"context"
	_ "embed"

	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// EmbeddedSource serves the dataset compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource returns the default source.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Name implements Source.
func (EmbeddedSource) Name() string {
	return "embedded"
}

// Load implements Source. Each call decodes a fresh copy.
func (EmbeddedSource) Load(ctx context.Context) (*model.Definitions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Decode(FormatYAML, defaultCatalog)
}

// DefaultCatalogYAML returns the raw embedded dataset.
func DefaultCatalogYAML() []byte {
	out := make([]byte, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}
