package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wastenot/wastenot-cli/internal/model"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

var validate = validator.New()

// Default returns the built-in recipe catalog, keyed by lower-cased primary
// ingredient. The returned map is freshly built per call; treat it as
// read-only once handed to the planner.
func Default() (map[string][]model.Recipe, error) {
	return parse(defaultCatalogJSON)
}

// Load reads a catalog file in the same JSON shape as the built-in one.
func Load(path string) (map[string][]model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe catalog %q: %w", path, err)
	}
	catalog, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %q: %w", path, err)
	}
	return catalog, nil
}

func parse(data []byte) (map[string][]model.Recipe, error) {
	var raw map[string][]model.Recipe
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse recipe catalog: %w", err)
	}

	out := make(map[string][]model.Recipe, len(raw))
	for key, recipes := range raw {
		normalized := strings.TrimSpace(strings.ToLower(key))
		if normalized == "" {
			return nil, fmt.Errorf("recipe catalog key must not be empty")
		}
		for _, recipe := range recipes {
			if err := validate.Struct(recipe); err != nil {
				return nil, fmt.Errorf("recipe %q under key %q: %w", recipe.Name, normalized, err)
			}
		}
		out[normalized] = append(out[normalized], recipes...)
	}
	return out, nil
}

// Keys lists the catalog's primary-ingredient keys in sorted order.
func Keys(catalog map[string][]model.Recipe) []string {
	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
