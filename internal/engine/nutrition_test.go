package engine_test

import (
	"strings"
	"testing"

	"github.com/wastenot/wastenot-cli/internal/engine"
	"github.com/wastenot/wastenot-cli/internal/model"
)

func TestCalculateNutritionScoreEmptyLog(t *testing.T) {
	t.Parallel()
	m := engine.CalculateNutritionScore(nil)
	if m.Score != 50 {
		t.Fatalf("expected baseline 50 for empty log, got %d", m.Score)
	}
	if m.Categories != (engine.NutritionCategories{}) {
		t.Fatalf("expected zero category counts, got %+v", m.Categories)
	}
	if len(m.Suggestions) == 0 {
		t.Fatalf("expected generic suggestions for empty log")
	}
}

func TestCalculateNutritionScoreOnePerCategory(t *testing.T) {
	t.Parallel()
	log := []model.LogEntry{
		logEntry("apple", "0.50", model.StatusConsumed),
		logEntry("spinach", "1.00", model.StatusConsumed),
		logEntry("chicken breast", "4.00", model.StatusConsumed),
		logEntry("brown rice", "2.00", model.StatusConsumed),
		logEntry("milk", "1.20", model.StatusConsumed),
	}
	m := engine.CalculateNutritionScore(log)
	if m.Score != 100 {
		t.Fatalf("expected perfect diversity score, got %d", m.Score)
	}
	want := engine.NutritionCategories{Fruits: 1, Vegetables: 1, Proteins: 1, Grains: 1, Dairy: 1}
	if m.Categories != want {
		t.Fatalf("unexpected categories: %+v", m.Categories)
	}
	if len(m.Suggestions) != 1 || !strings.Contains(m.Suggestions[0], "balance") {
		t.Fatalf("expected single positive suggestion, got %v", m.Suggestions)
	}
}

func TestCalculateNutritionScoreIgnoresWastedAndUnmatched(t *testing.T) {
	t.Parallel()
	log := []model.LogEntry{
		logEntry("banana", "0.30", model.StatusConsumed),
		logEntry("banana", "0.30", model.StatusWasted),
		logEntry("mystery sauce", "2.00", model.StatusConsumed),
	}
	m := engine.CalculateNutritionScore(log)
	if m.TotalConsumed != 2 {
		t.Fatalf("expected 2 consumed entries, got %d", m.TotalConsumed)
	}
	if m.Categories.Fruits != 1 {
		t.Fatalf("expected one fruit, got %d", m.Categories.Fruits)
	}
	total := m.Categories.Fruits + m.Categories.Vegetables + m.Categories.Proteins + m.Categories.Grains + m.Categories.Dairy
	if total != 1 {
		t.Fatalf("unmatched items must not land in any category, got %d classified", total)
	}
}

func TestCalculateNutritionScoreClassificationPriority(t *testing.T) {
	t.Parallel()
	// "eggplant" contains both a vegetable keyword and the protein keyword
	// "egg"; vegetables are checked first and must win.
	log := []model.LogEntry{logEntry("eggplant curry", "2.00", model.StatusConsumed)}
	m := engine.CalculateNutritionScore(log)
	if m.Categories.Vegetables != 1 || m.Categories.Proteins != 0 {
		t.Fatalf("expected eggplant classified as vegetable, got %+v", m.Categories)
	}
}

func TestCalculateNutritionScoreCapsOverRepresentedGroup(t *testing.T) {
	t.Parallel()
	log := []model.LogEntry{
		logEntry("apple", "0.50", model.StatusConsumed),
		logEntry("banana", "0.30", model.StatusConsumed),
		logEntry("orange", "0.60", model.StatusConsumed),
		logEntry("mango", "1.00", model.StatusConsumed),
		logEntry("grapes", "2.00", model.StatusConsumed),
	}
	m := engine.CalculateNutritionScore(log)
	// Fruit score caps at 100; the other four groups are zero.
	if m.Score != 20 {
		t.Fatalf("expected capped score 20 for fruit-only log, got %d", m.Score)
	}
	if len(m.Suggestions) != 4 {
		t.Fatalf("expected suggestions for the four missing groups, got %v", m.Suggestions)
	}
}

func TestCalculateNutritionScoreDairyLooserThreshold(t *testing.T) {
	t.Parallel()
	// 12 consumed entries: maxPerCategory = 3. Dairy count 1 stays at or
	// above its third (1 >= 1), while proteins count 1 falls below the
	// general half (1 < 1.5) and draws a suggestion.
	log := []model.LogEntry{
		logEntry("apple", "0.50", model.StatusConsumed),
		logEntry("banana", "0.30", model.StatusConsumed),
		logEntry("pear", "0.60", model.StatusConsumed),
		logEntry("carrot", "0.20", model.StatusConsumed),
		logEntry("spinach", "1.00", model.StatusConsumed),
		logEntry("tomato", "0.40", model.StatusConsumed),
		logEntry("rice", "2.00", model.StatusConsumed),
		logEntry("bread", "1.10", model.StatusConsumed),
		logEntry("pasta", "1.30", model.StatusConsumed),
		logEntry("oats", "0.90", model.StatusConsumed),
		logEntry("chicken", "4.00", model.StatusConsumed),
		logEntry("milk", "1.20", model.StatusConsumed),
	}
	m := engine.CalculateNutritionScore(log)
	joined := strings.Join(m.Suggestions, " ")
	if !strings.Contains(joined, "protein") {
		t.Fatalf("expected a protein suggestion, got %v", m.Suggestions)
	}
	if strings.Contains(joined, "dairy") {
		t.Fatalf("dairy at its looser threshold must not draw a suggestion, got %v", m.Suggestions)
	}
}
