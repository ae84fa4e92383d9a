package services

import (
	"math"

	"github.com/terraincognita07/macrolog/internal/models"
)

const noHighestCalorieDay = "None"

type WeeklyStats struct {
	AvgCalories        float64 `json:"avg_calories"`
	AvgProtein         float64 `json:"avg_protein"`
	AvgCarbs           float64 `json:"avg_carbs"`
	AvgFat             float64 `json:"avg_fat"`
	HighestCalorieDay  string  `json:"highest_calorie_day"`
	HighestCalorieDate string  `json:"highest_calorie_date,omitempty"`
	DaysLogged         int     `json:"days_logged"`
}

type WeeklyDay struct {
	Label string `json:"label"`
	DailyTotals
}

// BuildWeeklyStats averages the logged days of an oldest-first window.
// Unlogged days stay out of the denominators. The highest-calorie day must
// be strictly greater than every earlier one, so ties keep the oldest date.
func BuildWeeklyStats(days []WeeklyDay) WeeklyStats {
	total := models.Nutrients{}
	logged := 0
	var highest *WeeklyDay
	for index := range days {
		day := &days[index]
		if !day.Logged {
			continue
		}
		logged++
		total = total.Add(day.Totals)
		if highest == nil || day.Totals.Calories > highest.Totals.Calories {
			highest = day
		}
	}

	if logged == 0 {
		return WeeklyStats{HighestCalorieDay: noHighestCalorieDay}
	}

	count := float64(logged)
	return WeeklyStats{
		AvgCalories:        math.Round(total.Calories / count),
		AvgProtein:         math.Round(total.Protein / count),
		AvgCarbs:           math.Round(total.Carbs / count),
		AvgFat:             math.Round(total.Fat / count),
		HighestCalorieDay:  highest.Label,
		HighestCalorieDate: highest.Date,
		DaysLogged:         logged,
	}
}
