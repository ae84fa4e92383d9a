package models

// FoodRule maps a food keyword to the nutrients of one unit of that food.
type FoodRule struct {
	Keyword  string  `yaml:"keyword" json:"keyword"`
	Unit     string  `yaml:"unit" json:"unit"`
	Calories float64 `yaml:"calories" json:"calories"`
	Protein  float64 `yaml:"protein" json:"protein"`
	Carbs    float64 `yaml:"carbs" json:"carbs"`
	Fat      float64 `yaml:"fat" json:"fat"`
}

func (rule FoodRule) Nutrients() Nutrients {
	return Nutrients{
		Calories: rule.Calories,
		Protein:  rule.Protein,
		Carbs:    rule.Carbs,
		Fat:      rule.Fat,
	}
}
