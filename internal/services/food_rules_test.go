package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFoodRulesTable(t *testing.T) {
	table, err := DefaultFoodRules()
	if err != nil {
		t.Fatalf("load default food rules: %v", err)
	}

	if len(table.Foods) != 5 {
		t.Fatalf("expected 5 default foods, got %d", len(table.Foods))
	}
	if table.Default.Calories != 150 || table.Default.Protein != 8 || table.Default.Carbs != 20 || table.Default.Fat != 5 {
		t.Fatalf("unexpected default estimate %#v", table.Default)
	}

	keywords := map[string]bool{}
	for _, rule := range table.Foods {
		keywords[rule.Keyword] = true
	}
	for _, keyword := range []string{"egg", "rice", "chicken", "banana", "bread"} {
		if !keywords[keyword] {
			t.Fatalf("expected keyword %q in default table", keyword)
		}
	}
}

func TestLoadFoodRulesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.yaml")
	content := []byte(`
default:
  calories: 100
  protein: 1
  carbs: 2
  fat: 3
foods:
  - keyword: " Oat "
    unit: cup
    calories: 307
    protein: 11
    carbs: 55
    fat: 5
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	table, err := LoadFoodRules(path)
	if err != nil {
		t.Fatalf("load food rules: %v", err)
	}
	if len(table.Foods) != 1 || table.Foods[0].Keyword != "oat" {
		t.Fatalf("expected normalized keyword oat, got %#v", table.Foods)
	}

	estimate := NewFoodInterpreter(table).Estimate("2 cups oats")
	if estimate.Nutrients.Calories != 614 {
		t.Fatalf("expected 614 calories, got %v", estimate.Nutrients.Calories)
	}
}

func TestLoadFoodRulesEmptyPathUsesDefault(t *testing.T) {
	table, err := LoadFoodRules("  ")
	if err != nil {
		t.Fatalf("load food rules: %v", err)
	}
	if len(table.Foods) != 5 {
		t.Fatalf("expected default table, got %d foods", len(table.Foods))
	}
}

func TestParseFoodRulesRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "foods: [\n"},
		{name: "no foods", content: "default:\n  calories: 1\nfoods: []\n"},
		{name: "multi word keyword", content: "foods:\n  - keyword: peanut butter\n    calories: 1\n"},
		{name: "duplicate keyword", content: "foods:\n  - keyword: egg\n  - keyword: EGG\n"},
		{name: "negative nutrient", content: "foods:\n  - keyword: egg\n    fat: -1\n"},
		{name: "negative default", content: "default:\n  calories: -5\nfoods:\n  - keyword: egg\n"},
		{name: "infinite nutrient", content: "foods:\n  - keyword: egg\n    calories: .inf\n"},
		{name: "not a number", content: "foods:\n  - keyword: egg\n    protein: .nan\n"},
		{name: "oversized nutrient", content: "foods:\n  - keyword: egg\n    calories: 1e9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFoodRules([]byte(tt.content)); !errors.Is(err, ErrInvalidFoodRules) {
				t.Fatalf("expected ErrInvalidFoodRules, got %v", err)
			}
		})
	}
}

func TestLoadFoodRulesMissingFile(t *testing.T) {
	if _, err := LoadFoodRules(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected missing file to fail")
	}
}
