package wastenot

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot-cli/internal/model"
	"github.com/wastenot/wastenot-cli/internal/service"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record and review consumed or wasted food",
}

var (
	logName     string
	logPrice    string
	logQuantity int
	logStatus   string
	logDate     string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a consumed or wasted entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		occurred, err := parseDateFlag(logDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateLogEntry(sqldb, service.CreateLogEntryInput{
				Name:       logName,
				Price:      logPrice,
				Quantity:   logQuantity,
				Status:     model.EntryStatus(logStatus),
				OccurredAt: occurred,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s entry %d\n", logStatus, id)
			return nil
		})
	},
}

var (
	logListStatus string
	logListLimit  int
)

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List log entries in chronological order",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := service.ListLogEntriesFilter{Limit: logListLimit}
		if logListStatus != "" {
			status := model.EntryStatus(logListStatus)
			if !status.Valid() {
				return fmt.Errorf("status must be %q or %q", model.StatusConsumed, model.StatusWasted)
			}
			filter.Status = status
		}
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListLogEntries(sqldb, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tSTATUS\tNAME\tQTY\tPRICE")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%d\t%s\n",
					e.ID, e.OccurredAt.Local().Format("2006-01-02"), e.Status, e.Name, e.Quantity, e.Price.StringFixed(2))
			}
			return nil
		})
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteLogEntry(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %d\n", id)
			return nil
		})
	},
}

func init() {
	logAddCmd.Flags().StringVar(&logName, "name", "", "Item name")
	logAddCmd.Flags().StringVar(&logPrice, "price", "0", "Unit price")
	logAddCmd.Flags().IntVar(&logQuantity, "qty", 1, "Quantity")
	logAddCmd.Flags().StringVar(&logStatus, "status", string(model.StatusConsumed), "consumed or wasted")
	logAddCmd.Flags().StringVar(&logDate, "date", "", "Event date (YYYY-MM-DD, default today)")
	_ = logAddCmd.MarkFlagRequired("name")

	logListCmd.Flags().StringVar(&logListStatus, "status", "", "Filter by status")
	logListCmd.Flags().IntVar(&logListLimit, "limit", 0, "Limit the number of entries")

	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logRemoveCmd)
	rootCmd.AddCommand(logCmd)
}
