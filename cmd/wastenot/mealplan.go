package wastenot

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot-cli/internal/mealplan"
	"github.com/wastenot/wastenot-cli/internal/service"
)

var (
	mealplanDate       string
	mealplanJSON       bool
	mealplanCatalog    string
	mealplanVegetarian bool
	mealplanVegan      bool
	mealplanGlutenFree bool
)

var mealplanCmd = &cobra.Command{
	Use:   "mealplan",
	Short: "Suggest recipes that use up soon-to-expire pantry items",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseDateFlag(mealplanDate)
		if err != nil {
			return err
		}
		recipes, err := resolveCatalog(mealplanCatalog)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			prefs, err := resolvePreferences(sqldb, mealplanVegetarian, mealplanVegan, mealplanGlutenFree)
			if err != nil {
				return err
			}
			plan, err := service.BuildMealPlan(sqldb, recipes, prefs, ref)
			if err != nil {
				return err
			}
			if mealplanJSON {
				return printJSON(cmd, plan)
			}
			printMealPlan(cmd, plan)
			return nil
		})
	},
}

var mealplanWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Plan one meal per day for the coming week",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, err := parseDateFlag(mealplanDate)
		if err != nil {
			return err
		}
		recipes, err := resolveCatalog(mealplanCatalog)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			prefs, err := resolvePreferences(sqldb, mealplanVegetarian, mealplanVegan, mealplanGlutenFree)
			if err != nil {
				return err
			}
			plan, err := service.BuildWeeklyMealPlan(sqldb, recipes, prefs, ref)
			if err != nil {
				return err
			}
			if mealplanJSON {
				return printJSON(cmd, plan)
			}
			printWeeklyPlan(cmd, plan)
			return nil
		})
	},
}

func printMealPlan(cmd *cobra.Command, plan *mealplan.MealPlan) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, plan.Summary)
	for _, match := range plan.Recommendations {
		printMatch(cmd, match)
	}
}

func printWeeklyPlan(cmd *cobra.Command, plan *mealplan.WeeklyPlan) {
	out := cmd.OutOrStdout()
	if len(plan.Days) == 0 {
		fmt.Fprintln(out, "No recipes match your pantry this week.")
		return
	}
	for _, day := range plan.Days {
		fmt.Fprintf(out, "%s: %s (%d%% match, uses %s)\n",
			day.Day, day.Match.Recipe.Name, day.Match.MatchScore, day.Match.FocusItem)
	}
	if len(plan.ShoppingList) > 0 {
		fmt.Fprintln(out, "\nShopping list")
		for _, item := range plan.ShoppingList {
			fmt.Fprintf(out, "  %s (needed for %d recipe(s))\n", item.Ingredient, item.NeededFor)
		}
	}
}

func printMatch(cmd *cobra.Command, match mealplan.RecipeMatch) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s (%d%% match, %s, %d min)\n",
		match.Recipe.Name, match.MatchScore, match.Recipe.Difficulty, match.Recipe.PrepMinutes)
	fmt.Fprintf(out, "  uses up: %s (urgency %d)\n", match.FocusItem, match.Urgency)
	fmt.Fprintf(out, "  have:    %s\n", strings.Join(match.MatchedIngredients, ", "))
	if len(match.MissingIngredients) > 0 {
		fmt.Fprintf(out, "  missing: %s\n", strings.Join(match.MissingIngredients, ", "))
	}
}

func init() {
	for _, c := range []*cobra.Command{mealplanCmd, mealplanWeekCmd} {
		c.Flags().StringVar(&mealplanDate, "date", "", "Reference date (YYYY-MM-DD, default today)")
		c.Flags().BoolVar(&mealplanJSON, "json", false, "Output as JSON")
		c.Flags().StringVar(&mealplanCatalog, "catalog", "", "Path to a custom recipe catalog (JSON)")
		c.Flags().BoolVar(&mealplanVegetarian, "vegetarian", false, "Exclude recipes containing meat")
		c.Flags().BoolVar(&mealplanVegan, "vegan", false, "Exclude recipes containing meat or dairy")
		c.Flags().BoolVar(&mealplanGlutenFree, "gluten-free", false, "Note a gluten-free preference")
	}
	mealplanCmd.AddCommand(mealplanWeekCmd)
	rootCmd.AddCommand(mealplanCmd)
}
