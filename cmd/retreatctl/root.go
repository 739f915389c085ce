package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fantravel1/cheapretreats-sub001/internal/catalog"
	"github.com/fantravel1/cheapretreats-sub001/internal/config"
	"github.com/fantravel1/cheapretreats-sub001/internal/database"
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
	"github.com/fantravel1/cheapretreats-sub001/internal/repository"
)

// sourceFlags selects where definitions are read from.
type sourceFlags struct {
	kind string
	path string
}

func newRootCmd() *cobra.Command {
	flags := &sourceFlags{}

	root := &cobra.Command{
		Use:           "retreatctl",
		Short:         "Inspect and check retreat directory definitions",
		Long:          "retreatctl loads directory definitions from the embedded dataset, a YAML/TOML file or SurrealDB and reports on them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.kind, "source", "", "definitions source: embedded, file or surrealdb (default: file when --path is set, else embedded)")
	root.PersistentFlags().StringVar(&flags.path, "path", "", "YAML or TOML definitions file")

	root.AddCommand(
		newValidateCmd(flags),
		newRoutesCmd(flags),
		newStatsCmd(flags),
		newExportCmd(flags),
	)
	return root
}

// loadDefinitions reads raw definitions from the selected source. SurrealDB
// connection settings come from the same DB_* variables as the server.
func (f *sourceFlags) loadDefinitions(ctx context.Context) (*model.Definitions, string, error) {
	kind := f.kind
	if kind == "" {
		kind = repository.KindEmbedded
		if f.path != "" {
			kind = repository.KindFile
		}
	}

	opts := repository.OpenOptions{Kind: kind, Path: f.path}
	if kind == repository.KindSurrealDB {
		cfg, err := config.Load()
		if err != nil {
			return nil, "", err
		}
		opts.Database = database.Config{
			Host:      cfg.Database.Host,
			Port:      cfg.Database.Port,
			User:      cfg.Database.User,
			Password:  cfg.Database.Password,
			Namespace: cfg.Database.Namespace,
			Database:  cfg.Database.Database,
		}
	}

	src, closeSource, err := repository.Open(ctx, opts)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = closeSource() }()

	defs, err := src.Load(ctx)
	if err != nil {
		return nil, "", err
	}
	return defs, src.Name(), nil
}

// loadCatalog reads and builds the catalog.
func (f *sourceFlags) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	defs, name, err := f.loadDefinitions(ctx)
	if err != nil {
		return nil, err
	}
	c, err := catalog.Build(*defs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}
