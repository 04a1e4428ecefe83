// Package cmd provides the command-line interface for the catalog.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	appcategory "catalog/application/category"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the catalog command tree.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "catalog",
		Short: "In-memory category catalog",
		Long: `catalog creates categories in an in-memory repository and searches ` +
			`them with filtering, sorting and pagination.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	root.AddCommand(newDemoCommand(&configPath))
	return root
}

func newDemoCommand(configPath *string) *cobra.Command {
	var (
		names string
		req   appcategory.ListCategoriesRequest
	)

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Create categories and print one page of search results as JSON",
		RunE: func(c *cobra.Command, _ []string) error {
			app, err := NewApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()

			page, err := app.Run(c.Context(), splitNames(names), req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(page)
		},
	}

	flags := demo.Flags()
	flags.StringVar(&names, "names", "Movies,Documentaries,Series", "Comma-separated category names to create")
	flags.StringVar(&req.Filter, "filter", "", "Case-insensitive name filter")
	flags.StringVar(&req.Sort, "sort", "", "Sort field (name, created_at)")
	flags.StringVar(&req.SortDir, "sort-dir", "", "Sort direction (asc, desc)")
	flags.IntVar(&req.Page, "page", 1, "Page number (1-indexed)")
	flags.IntVar(&req.PerPage, "per-page", 0, "Items per page (0 uses config default)")
	return demo
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func splitNames(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
