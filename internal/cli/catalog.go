package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"binminder/internal/domain"
)

func addCatalog(topLevel *cobra.Command, ro *rootOptions) {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the bin categories.",
		Example: `
binminder catalog
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(ro)
			if err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), catalog)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

// printCatalog renders the catalog as a table; the default bin is marked
func printCatalog(w io.Writer, catalog domain.BinCatalog) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Index"), bold.Sprint("Label"), bold.Sprint("Icon"), "")
	for _, b := range catalog.All() {
		mark := ""
		if b == catalog.Default() {
			mark = faint.Sprint("(default)")
		}
		tbl.AddRow(b.Index, b.DisplayLabel, b.IconKey, mark)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
}
