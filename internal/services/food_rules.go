package services

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/terraincognita07/macrolog/foods"
	"github.com/terraincognita07/macrolog/internal/models"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFoodRules = errors.New("invalid food rules")

// MaxFoodRuleValue bounds every per-unit nutrient in a rule table.
const MaxFoodRuleValue = 10000

var foodKeywordPattern = regexp.MustCompile(`^[a-z]+$`)

// FoodRuleTable is the keyword dictionary the interpreter matches against,
// plus the estimate returned when nothing matches.
type FoodRuleTable struct {
	Default models.Nutrients  `yaml:"default" json:"default"`
	Foods   []models.FoodRule `yaml:"foods" json:"foods"`
}

func DefaultFoodRules() (FoodRuleTable, error) {
	return ParseFoodRules(foods.Default)
}

// LoadFoodRules reads a YAML rule table from path. An empty path selects the
// embedded default table.
func LoadFoodRules(path string) (FoodRuleTable, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultFoodRules()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return FoodRuleTable{}, fmt.Errorf("read food rules %s: %w", path, err)
	}
	return ParseFoodRules(content)
}

func ParseFoodRules(content []byte) (FoodRuleTable, error) {
	table := FoodRuleTable{}
	if err := yaml.Unmarshal(content, &table); err != nil {
		return FoodRuleTable{}, fmt.Errorf("%w: %v", ErrInvalidFoodRules, err)
	}
	if err := table.normalize(); err != nil {
		return FoodRuleTable{}, err
	}
	return table, nil
}

func (table *FoodRuleTable) normalize() error {
	if len(table.Foods) == 0 {
		return fmt.Errorf("%w: no foods defined", ErrInvalidFoodRules)
	}
	if !validNutrients(table.Default) {
		return fmt.Errorf("%w: default estimate has a negative or out of range value", ErrInvalidFoodRules)
	}

	seen := make(map[string]struct{}, len(table.Foods))
	for index := range table.Foods {
		rule := &table.Foods[index]
		rule.Keyword = strings.ToLower(strings.TrimSpace(rule.Keyword))
		if !foodKeywordPattern.MatchString(rule.Keyword) {
			return fmt.Errorf("%w: keyword %q must be a single lowercase word", ErrInvalidFoodRules, rule.Keyword)
		}
		if _, exists := seen[rule.Keyword]; exists {
			return fmt.Errorf("%w: duplicate keyword %q", ErrInvalidFoodRules, rule.Keyword)
		}
		seen[rule.Keyword] = struct{}{}

		if !validNutrients(rule.Nutrients()) {
			return fmt.Errorf("%w: keyword %q has a negative or out of range value", ErrInvalidFoodRules, rule.Keyword)
		}
	}
	return nil
}

func validNutrients(value models.Nutrients) bool {
	for _, field := range []float64{value.Calories, value.Protein, value.Carbs, value.Fat} {
		// NaN fails both comparisons.
		if !(field >= 0 && field <= MaxFoodRuleValue) {
			return false
		}
	}
	return true
}
