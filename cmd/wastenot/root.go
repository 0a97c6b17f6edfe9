package wastenot

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot-cli/internal/app"
)

var (
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wastenot",
	Short: "wastenot tracks food waste and plans meals from your terminal",
	Long: "wastenot is a local-first food-waste assistant: log what you consume or throw away, " +
		"track pantry expiry dates, and get sustainability scores, recommendations, and expiry-driven meal plans.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		app.SetVerbose(verbose)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
