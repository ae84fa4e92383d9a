package services

import (
	"errors"
	"math"
	"strings"
)

const (
	SexMale   = "male"
	SexFemale = "female"

	calorieAdjustment = 500
)

var ErrInvalidEnergyProfile = errors.New("invalid energy profile")

// ActivityFactors maps an activity level to its maintenance multiplier.
var ActivityFactors = map[string]float64{
	"sedentary":  1.2,
	"lightly":    1.375,
	"moderately": 1.55,
	"very":       1.725,
	"super":      1.9,
}

type EnergyProfile struct {
	Age           float64 `json:"age"`
	Sex           string  `json:"sex"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	ActivityLevel string  `json:"activity_level"`
}

type EnergyResult struct {
	BMR         float64 `json:"bmr"`
	Maintenance float64 `json:"maintenance"`
	WeightLoss  float64 `json:"weight_loss"`
	Bulking     float64 `json:"bulking"`
}

// CalculateEnergy applies the Mifflin-St Jeor equation and scales it by the
// activity factor. Weight loss and bulking targets are maintenance -/+ 500.
func CalculateEnergy(profile EnergyProfile) (EnergyResult, error) {
	profile.Sex = strings.ToLower(strings.TrimSpace(profile.Sex))
	profile.ActivityLevel = strings.ToLower(strings.TrimSpace(profile.ActivityLevel))
	if err := validateEnergyProfile(profile); err != nil {
		return EnergyResult{}, err
	}

	bmr := 10*profile.WeightKg + 6.25*profile.HeightCm - 5*profile.Age
	if profile.Sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	maintenance := bmr * ActivityFactors[profile.ActivityLevel]
	return EnergyResult{
		BMR:         math.Round(bmr),
		Maintenance: math.Round(maintenance),
		WeightLoss:  math.Round(maintenance - calorieAdjustment),
		Bulking:     math.Round(maintenance + calorieAdjustment),
	}, nil
}

func validateEnergyProfile(profile EnergyProfile) error {
	if profile.Sex != SexMale && profile.Sex != SexFemale {
		return ErrInvalidEnergyProfile
	}
	if _, ok := ActivityFactors[profile.ActivityLevel]; !ok {
		return ErrInvalidEnergyProfile
	}
	if profile.Age < 1 || profile.Age > 130 {
		return ErrInvalidEnergyProfile
	}
	if profile.WeightKg < 10 || profile.WeightKg > 400 {
		return ErrInvalidEnergyProfile
	}
	if profile.HeightCm < 50 || profile.HeightCm > 250 {
		return ErrInvalidEnergyProfile
	}
	return nil
}
