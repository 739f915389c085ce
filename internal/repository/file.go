package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// FileSource reads definitions from a YAML or TOML file. The file is re-read
// on every Load.
type FileSource struct {
	path   string
	format Format
}

// NewFileSource creates a file source. The format is chosen by extension.
func NewFileSource(path string) (*FileSource, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{path: path, format: format}, nil
}

// Path returns the file being read.
func (s *FileSource) Path() string {
	return s.path
}

// Name implements Source.
func (s *FileSource) Name() string {
	return "file:" + s.path
}

// Load implements Source.
func (s *FileSource) Load(ctx context.Context) (*model.Definitions, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrSource, s.path, err)
	}

	defs, err := Decode(s.format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return defs, nil
}
