package wastenot

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot-cli/internal/model"
	"github.com/wastenot/wastenot-cli/internal/service"
)

var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Manage the pantry inventory",
}

var (
	pantryName      string
	pantryPrice     string
	pantryQuantity  int
	pantryUnit      string
	pantryExpires   string
	pantryPurchased string
)

var pantryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the pantry",
	RunE: func(cmd *cobra.Command, args []string) error {
		if pantryExpires == "" {
			return fmt.Errorf("--expires is required")
		}
		expires, err := time.ParseInLocation("2006-01-02", pantryExpires, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --expires date (expected YYYY-MM-DD)")
		}
		var purchased time.Time
		if pantryPurchased != "" {
			purchased, err = time.ParseInLocation("2006-01-02", pantryPurchased, time.Local)
			if err != nil {
				return fmt.Errorf("invalid --purchased date (expected YYYY-MM-DD)")
			}
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddInventoryItem(sqldb, service.AddInventoryItemInput{
				Name:        pantryName,
				Price:       pantryPrice,
				Quantity:    pantryQuantity,
				Unit:        pantryUnit,
				ExpiresOn:   expires,
				PurchasedOn: purchased,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added pantry item %d\n", id)
			return nil
		})
	},
}

var pantryListDate string

var pantryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pantry items, soonest-expiring first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseDateFlag(pantryListDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListInventory(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tQTY\tUNIT\tPRICE\tEXPIRES\tDAYS LEFT")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\t%s\t%s\t%s\t%d\n",
					item.ID, item.Name, item.Quantity, item.Unit, item.Price.StringFixed(2),
					item.ExpiresOn.Format("2006-01-02"), item.DaysLeft(ref))
			}
			return nil
		})
	},
}

var pantryRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a pantry item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("item id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.RemoveInventoryItem(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed pantry item %d\n", id)
			return nil
		})
	},
}

var (
	pantryUseQuantity int
	pantryUseStatus   string
	pantryUseDate     string
)

var pantryUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Consume or waste part of a pantry item and log it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("item id", args[0])
		if err != nil {
			return err
		}
		occurred, err := parseDateFlag(pantryUseDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UseInventoryItem(sqldb, service.UseInventoryItemInput{
				ID:         id,
				Quantity:   pantryUseQuantity,
				Status:     model.EntryStatus(pantryUseStatus),
				OccurredAt: occurred,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d x item %d as %s\n", pantryUseQuantity, id, pantryUseStatus)
			return nil
		})
	},
}

func init() {
	pantryAddCmd.Flags().StringVar(&pantryName, "name", "", "Item name")
	pantryAddCmd.Flags().StringVar(&pantryPrice, "price", "0", "Unit price")
	pantryAddCmd.Flags().IntVar(&pantryQuantity, "qty", 1, "Quantity")
	pantryAddCmd.Flags().StringVar(&pantryUnit, "unit", "pcs", "Unit of measure")
	pantryAddCmd.Flags().StringVar(&pantryExpires, "expires", "", "Expiry date (YYYY-MM-DD)")
	pantryAddCmd.Flags().StringVar(&pantryPurchased, "purchased", "", "Purchase date (YYYY-MM-DD, default today)")
	_ = pantryAddCmd.MarkFlagRequired("name")

	pantryListCmd.Flags().StringVar(&pantryListDate, "date", "", "Reference date for days-left (YYYY-MM-DD, default today)")

	pantryUseCmd.Flags().IntVar(&pantryUseQuantity, "qty", 1, "Quantity to use")
	pantryUseCmd.Flags().StringVar(&pantryUseStatus, "status", string(model.StatusConsumed), "consumed or wasted")
	pantryUseCmd.Flags().StringVar(&pantryUseDate, "date", "", "Event date (YYYY-MM-DD, default today)")

	pantryCmd.AddCommand(pantryAddCmd)
	pantryCmd.AddCommand(pantryListCmd)
	pantryCmd.AddCommand(pantryRemoveCmd)
	pantryCmd.AddCommand(pantryUseCmd)
	rootCmd.AddCommand(pantryCmd)
}
