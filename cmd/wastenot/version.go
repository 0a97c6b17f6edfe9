package wastenot

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via -ldflags at release build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version/build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd)
	},
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wastenot %s\n", version)
	fmt.Fprintf(out, "commit: %s\n", commit)
	fmt.Fprintf(out, "built:  %s (%s)\n", date, runtime.Version())
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
