package wastenot

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot-cli/internal/service"
)

var doctorDate string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the database for rows the analyzers cannot read",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseDateFlag(doctorDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb, ref)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Unreadable log prices:       %d\n", report.BadLogPrices)
			fmt.Fprintf(out, "Unreadable inventory prices: %d\n", report.BadInventoryPrices)
			fmt.Fprintf(out, "Unreadable inventory dates:  %d\n", report.BadInventoryDates)
			fmt.Fprintf(out, "Expired inventory items:     %d\n", report.ExpiredItems)
			if report.Clean() {
				fmt.Fprintln(out, "Database looks healthy.")
				return nil
			}
			return fmt.Errorf("found unreadable rows; fix or remove them before running profile")
		})
	},
}

func init() {
	doctorCmd.Flags().StringVar(&doctorDate, "date", "", "Reference date for expiry checks (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(doctorCmd)
}
