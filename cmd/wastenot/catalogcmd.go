package wastenot

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot-cli/internal/catalog"
)

var catalogPath string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the recipe catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog ingredients and their recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		recipes, err := resolveCatalog(catalogPath)
		if err != nil {
			return err
		}
		for _, key := range catalog.Keys(recipes) {
			names := make([]string, 0, len(recipes[key]))
			for _, r := range recipes[key] {
				names = append(names, r.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, strings.Join(names, ", "))
		}
		return nil
	},
}

func init() {
	catalogListCmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a custom recipe catalog (JSON)")
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
