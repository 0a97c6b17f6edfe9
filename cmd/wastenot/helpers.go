package wastenot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wastenot/wastenot-cli/internal/app"
	"github.com/wastenot/wastenot-cli/internal/catalog"
	"github.com/wastenot/wastenot-cli/internal/db"
	"github.com/wastenot/wastenot-cli/internal/model"
	"github.com/wastenot/wastenot-cli/internal/service"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	app.Logger().WithFields(logrus.Fields{"path": path}).Debug("opening database")
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

// parseDateFlag resolves a --date style flag to local midnight; an empty
// value means today. Analytics and meal-plan commands pass the result down
// as the engine's reference date, so the engine itself never reads a clock.
func parseDateFlag(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return beginningOfDay(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return t, nil
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// resolveCatalog loads --catalog when given, otherwise the built-in one.
func resolveCatalog(path string) (map[string][]model.Recipe, error) {
	if strings.TrimSpace(path) != "" {
		app.Logger().WithFields(logrus.Fields{"path": path}).Debug("loading recipe catalog")
		return catalog.Load(path)
	}
	return catalog.Default()
}

// resolvePreferences turns preference flags into dietary tags; with no
// flags set, the stored default preference applies.
func resolvePreferences(sqldb *sql.DB, vegetarian, vegan, glutenFree bool) ([]model.Preference, error) {
	prefs := make([]model.Preference, 0, 3)
	if vegetarian {
		prefs = append(prefs, model.PrefVegetarian)
	}
	if vegan {
		prefs = append(prefs, model.PrefVegan)
	}
	if glutenFree {
		prefs = append(prefs, model.PrefGlutenFree)
	}
	if len(prefs) > 0 {
		return prefs, nil
	}

	stored, found, err := service.GetConfig(sqldb, service.ConfigDietPreference)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	pref, ok := model.ParsePreference(stored)
	if !ok {
		return nil, fmt.Errorf("stored diet preference %q is not recognized", stored)
	}
	return []model.Preference{pref}, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
