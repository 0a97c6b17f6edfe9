package wastenot

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot-cli/internal/engine"
	"github.com/wastenot/wastenot-cli/internal/service"
)

var (
	profileDate string
	profileJSON bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the sustainability profile built from your log and pantry",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseDateFlag(profileDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.BuildProfile(sqldb, ref)
			if err != nil {
				return err
			}
			if profileJSON {
				return printJSON(cmd, profile)
			}
			printProfile(cmd, profile)
			return nil
		})
	},
}

func printProfile(cmd *cobra.Command, p *engine.SDGProfile) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Sustainability score: %d (%s)\n", p.Score, p.Band)
	fmt.Fprintf(out, "Consumed %d of %d logged items (%d%% success rate)\n",
		p.SDG.ConsumedCount, p.SDG.TotalItems, p.SDG.SuccessRate)

	fmt.Fprintf(out, "\nWaste\n")
	fmt.Fprintf(out, "  Money wasted so far: %s\n", p.Waste.TotalWastedMoney.StringFixed(2))
	fmt.Fprintf(out, "  Value at risk:       %s\n", p.Waste.RiskValue.StringFixed(2))
	for _, item := range p.Waste.RiskItems {
		fmt.Fprintf(out, "  - %s expires in %d day(s), %s at stake\n",
			item.Name, item.DaysLeft, item.RiskValue.StringFixed(2))
	}

	fmt.Fprintf(out, "\nNutrition score: %d\n", p.Nutrition.Score)
	c := p.Nutrition.Categories
	fmt.Fprintf(out, "  fruits %d, vegetables %d, proteins %d, grains %d, dairy %d\n",
		c.Fruits, c.Vegetables, c.Proteins, c.Grains, c.Dairy)
	for _, s := range p.Nutrition.Suggestions {
		fmt.Fprintf(out, "  - %s\n", s)
	}

	fmt.Fprintf(out, "\nWeekly trend\n")
	for _, line := range p.Weekly.Insights {
		fmt.Fprintf(out, "  - %s\n", line)
	}

	if len(p.Recommendations.Recommendations) > 0 {
		fmt.Fprintf(out, "\nRecommendations\n")
		for _, rec := range p.Recommendations.Recommendations {
			fmt.Fprintf(out, "  [%s] %s (+%d): %s\n", rec.Priority, rec.Action, rec.Impact, rec.Description)
			for _, step := range rec.Steps {
				fmt.Fprintf(out, "      * %s\n", step)
			}
		}
		fmt.Fprintf(out, "\nFollowing these could lift your score to %d\n", p.EstimatedNewScore)
	} else {
		fmt.Fprintf(out, "\nNo recommendations right now. Keep it up!\n")
	}
}

func init() {
	profileCmd.Flags().StringVar(&profileDate, "date", "", "Reference date (YYYY-MM-DD, default today)")
	profileCmd.Flags().BoolVar(&profileJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(profileCmd)
}
