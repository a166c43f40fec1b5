package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqdrill/internal/catalog"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories in the question file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, name := range cat.Choices() {
			fmt.Fprintf(out, "%-24s %d\n", name, cat.Count(name))
		}
		return nil
	},
}

// describeCatalog returns the one-line catalog summary printed by validate.
func describeCatalog(cat *catalog.Catalog) string {
	return fmt.Sprintf("%d categories, %d questions", len(cat.Categories()), cat.Len())
}
