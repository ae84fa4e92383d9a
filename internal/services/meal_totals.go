package services

import (
	"time"

	"github.com/terraincognita07/macrolog/internal/models"
)

// DailyTotals is derived from a day's entries on every read and never
// stored. Logged reports whether a stored log with at least one entry exists,
// which keeps "ate nothing" apart from "did not log".
type DailyTotals struct {
	Date       string           `json:"date"`
	Logged     bool             `json:"logged"`
	EntryCount int              `json:"entry_count"`
	Totals     models.Nutrients `json:"totals"`
}

func SumMealTotals(entries []models.MealEntry) models.Nutrients {
	total := models.Nutrients{}
	for _, entry := range entries {
		total = total.Add(entry.Nutrients())
	}
	return total
}

func BuildDailyTotals(day time.Time, entries []models.MealEntry, location *time.Location) DailyTotals {
	return DailyTotals{
		Date:       FormatDay(day, location),
		Logged:     len(entries) > 0,
		EntryCount: len(entries),
		Totals:     SumMealTotals(entries),
	}
}
