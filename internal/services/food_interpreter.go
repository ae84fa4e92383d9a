package services

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/terraincognita07/macrolog/internal/models"
)

// MaxFoodQuantity caps the quantity read in front of a keyword.
const MaxFoodQuantity = 1000

type compiledFoodRule struct {
	rule    models.FoodRule
	pattern *regexp.Regexp
}

// FoodInterpreter turns free meal text into a nutrient estimate using a fixed
// keyword table. It holds no mutable state and is safe for concurrent use.
type FoodInterpreter struct {
	rules    []compiledFoodRule
	fallback models.Nutrients
	table    FoodRuleTable
}

type FoodMatch struct {
	Keyword  string           `json:"keyword"`
	Quantity float64          `json:"quantity"`
	Matched  string           `json:"matched"`
	Subtotal models.Nutrients `json:"subtotal"`
}

type MealEstimate struct {
	Food        string           `json:"food"`
	Nutrients   models.Nutrients `json:"nutrients"`
	Matches     []FoodMatch      `json:"matches"`
	UsedDefault bool             `json:"used_default"`
}

func NewFoodInterpreter(table FoodRuleTable) *FoodInterpreter {
	rules := make([]compiledFoodRule, 0, len(table.Foods))
	for _, rule := range table.Foods {
		rules = append(rules, compiledFoodRule{
			rule:    rule,
			pattern: foodRulePattern(rule.Keyword),
		})
	}
	return &FoodInterpreter{
		rules:    rules,
		fallback: table.Default,
		table:    table,
	}
}

// foodRulePattern matches an optional quantity, an optional filler word and
// the keyword with an optional plural "s", e.g. "2 boiled eggs".
func foodRulePattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`\b(?:(\d+(?:\.\d+)?)\s*)?(?:[a-z]+\s+)?` + regexp.QuoteMeta(keyword) + `s?\b`)
}

func (interpreter *FoodInterpreter) Rules() FoodRuleTable {
	return interpreter.table
}

// Estimate never fails. Each keyword contributes at most once, using its
// leftmost match; text without any keyword gets the table's default estimate.
func (interpreter *FoodInterpreter) Estimate(text string) MealEstimate {
	normalized := strings.ToLower(text)

	total := models.Nutrients{}
	matches := make([]FoodMatch, 0)
	for _, compiled := range interpreter.rules {
		submatch := compiled.pattern.FindStringSubmatch(normalized)
		if submatch == nil {
			continue
		}

		quantity := parseFoodQuantity(submatch[1])
		subtotal := compiled.rule.Nutrients().Scale(quantity)
		total = total.Add(subtotal)
		matches = append(matches, FoodMatch{
			Keyword:  compiled.rule.Keyword,
			Quantity: quantity,
			Matched:  strings.TrimSpace(submatch[0]),
			Subtotal: subtotal,
		})
	}

	estimate := MealEstimate{
		Food:    text,
		Matches: matches,
	}
	if len(matches) == 0 {
		estimate.Nutrients = roundNutrients(interpreter.fallback)
		estimate.UsedDefault = true
		return estimate
	}

	estimate.Nutrients = roundNutrients(total)
	return estimate
}

func parseFoodQuantity(raw string) float64 {
	if raw == "" {
		return 1
	}
	quantity, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 1
	}
	if math.IsNaN(quantity) {
		return 1
	}
	return math.Min(quantity, MaxFoodQuantity)
}

func roundNutrients(value models.Nutrients) models.Nutrients {
	return models.Nutrients{
		Calories: math.Round(value.Calories),
		Protein:  math.Round(value.Protein),
		Carbs:    math.Round(value.Carbs),
		Fat:      math.Round(value.Fat),
	}
}
