package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fantravel1/cheapretreats-sub001/internal/catalog"
	"github.com/fantravel1/cheapretreats-sub001/internal/repository"
)

func newValidateCmd(flags *sourceFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Build the catalog and report every integrity problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, name, err := flags.loadDefinitions(cmd.Context())
			if err != nil {
				return err
			}

			c, err := catalog.Build(*defs)
			if err != nil {
				problems := splitJoined(err)
				for _, p := range problems {
					fmt.Fprintf(cmd.ErrOrStderr(), "✗ %v\n", p)
				}
				return fmt.Errorf("%s: validation failed with %d problem(s)", name, len(problems))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d retreats, %d locations, %d types, %d needs (version %s)\n",
				name, c.Len(), len(defs.Locations), len(defs.Types), len(defs.Needs), c.Version())
			return nil
		},
	}
}

func newRoutesCmd(flags *sourceFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every page path the directory publishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			routes := c.Routes()

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, routes)
			}
			for _, p := range routes.Paths() {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print route keys grouped by facet as JSON")
	return cmd
}

func newStatsCmd(flags *sourceFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print directory totals and price statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			overview := c.Overview()

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, overview)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "version\t%s\n", overview.Version)
			fmt.Fprintf(tw, "retreats\t%d\n", overview.Retreats)
			fmt.Fprintf(tw, "countries\t%d\n", overview.Countries)
			fmt.Fprintf(tw, "locations\t%d\n", overview.Locations)
			fmt.Fprintf(tw, "types\t%d\n", overview.Types)
			fmt.Fprintf(tw, "needs\t%d\n", overview.Needs)
			fmt.Fprintf(tw, "min price\t%d\n", overview.Prices.MinPrice)
			fmt.Fprintf(tw, "avg price\t%d\n", overview.Prices.AvgPrice)
			fmt.Fprintf(tw, "has free\t%t\n", overview.Prices.HasFree)
			for _, t := range overview.Tiers {
				fmt.Fprintf(tw, "tier %s\t%d retreats in %d countries\n", t.Tier.ID, t.Count, t.Countries)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the overview as JSON")
	return cmd
}

func newExportCmd(flags *sourceFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the definitions as YAML or TOML",
		Long:  "export re-encodes the selected definitions, e.g. to seed a file source from the embedded dataset.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, _, err := flags.loadDefinitions(cmd.Context())
			if err != nil {
				return err
			}
			data, err := repository.Encode(repository.Format(format), *defs)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", string(repository.FormatYAML), "output format: yaml or toml")
	return cmd
}

// splitJoined flattens an errors.Join result into its parts.
func splitJoined(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
