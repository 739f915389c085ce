package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// ErrSource marks a failure to read or decode definitions.
var ErrSource = errors.New("definitions source error")

// Source produces the raw directory definitions.
type Source interface {
	// Load reads a complete set of definitions. It never returns a partial
	// result alongside an error.
	Load(ctx context.Context) (*model.Definitions, error)

	// Name identifies the source in logs.
	Name() string
}

// Format is an on-disk encoding of Definitions.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: unsupported file extension %q", ErrSource, filepath.Ext(path))
	}
}

// Decode parses data in the given format. Unknown keys are rejected so a
// misspelt field fails the load instead of silently dropping data.
func Decode(format Format, data []byte) (*model.Definitions, error) {
	var defs model.Definitions

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&defs); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: parsing yaml: %v", ErrSource, err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&defs); err != nil {
			return nil, fmt.Errorf("%w: parsing toml: %v", ErrSource, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrSource, format)
	}

	return &defs, nil
}

// Encode renders defs in the given format. Output decodes back to the same
// definitions.
func Encode(format Format, defs model.Definitions) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(defs); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(defs); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", ErrSource, format)
	}

	return buf.Bytes(), nil
}
