package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"cleanpro-web/internal/catalog"
	"cleanpro-web/internal/usecase"

	"github.com/spf13/cobra"
)

type catalogOptions struct {
	file string
}

func newCatalogCmd() *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and export the service catalog",
	}
	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Catalog YAML to use instead of the embedded one")

	cmd.AddCommand(newCatalogValidateCmd(opts))
	cmd.AddCommand(newCatalogListCmd(opts))
	cmd.AddCommand(newCatalogExportCmd(opts))
	return cmd
}

func (o *catalogOptions) load() (*catalog.Catalog, error) {
	if o.file == "" {
		return catalog.Default()
	}
	data, err := os.ReadFile(o.file)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return catalog.Load(data)
}

func newCatalogValidateCmd(opts *catalogOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog's integrity rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.load()
			var integrity *catalog.IntegrityError
			if errors.As(err, &integrity) {
				for _, p := range integrity.Problems {
					fmt.Fprintln(cmd.ErrOrStderr(), "-", p)
				}
				return fmt.Errorf("catalog has %d problem(s)", len(integrity.Problems))
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog OK: %d categories, %d services\n", cat.CategoryCount(), cat.TotalServiceCount())
			return nil
		},
	}
}

type listOptions struct {
	jsonOutput bool
}

func newCatalogListCmd(catOpts *catalogOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List services, optionally filtered by a search query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catOpts.load()
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			services := usecase.NewCatalogUsecase(cat).ListServices(cmd.Context(), query)

			if opts.jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(services)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tSLUG\tNAME\tPRICING\tPOPULAR")
			for _, s := range services {
				popular := ""
				if s.Popular {
					popular = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.Category, s.Slug, s.Name, s.PricingModel.Label(), popular)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func newCatalogExportCmd(catOpts *catalogOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the price list workbook (.xlsx)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catOpts.load()
			if err != nil {
				return err
			}
			data, filename, err := usecase.NewCatalogUsecase(cat).ExportPriceList(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				output = filename
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: dated file name in the working directory)")
	return cmd
}
