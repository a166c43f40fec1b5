package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqdrill/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a question file without starting the quiz",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveQuestionsPath(cmd)
		if len(args) == 1 {
			path = args[0]
		}
		cat, err := catalog.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", path, describeCatalog(cat))
		return nil
	},
}
