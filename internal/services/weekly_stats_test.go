package services

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/terraincognita07/macrolog/internal/models"
)

func weeklyDay(date string, label string, logged bool, calories float64, protein float64, carbs float64, fat float64) WeeklyDay {
	return WeeklyDay{
		Label: label,
		DailyTotals: DailyTotals{
			Date:   date,
			Logged: logged,
			Totals: models.Nutrients{Calories: calories, Protein: protein, Carbs: carbs, Fat: fat},
		},
	}
}

func TestBuildWeeklyStatsWithoutLoggedDays(t *testing.T) {
	days := make([]WeeklyDay, 0, 7)
	for index := 0; index < 7; index++ {
		days = append(days, weeklyDay(fmt.Sprintf("2026-10-%02d", 10+index), "Mon", false, 0, 0, 0, 0))
	}

	got := BuildWeeklyStats(days)
	want := WeeklyStats{HighestCalorieDay: "None"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildWeeklyStatsAveragesLoggedDaysOnly(t *testing.T) {
	days := []WeeklyDay{
		weeklyDay("2026-10-10", "Sat", false, 0, 0, 0, 0),
		weeklyDay("2026-10-11", "Sun", true, 500, 20, 60, 10),
		weeklyDay("2026-10-12", "Mon", true, 800, 41, 90, 25),
		weeklyDay("2026-10-13", "Tue", false, 0, 0, 0, 0),
		weeklyDay("2026-10-14", "Wed", true, 800, 30, 100, 30),
		weeklyDay("2026-10-15", "Thu", true, 301, 10, 31, 6),
		weeklyDay("2026-10-16", "Fri", false, 0, 0, 0, 0),
	}

	got := BuildWeeklyStats(days)
	want := WeeklyStats{
		AvgCalories:        600,
		AvgProtein:         25,
		AvgCarbs:           70,
		AvgFat:             18,
		HighestCalorieDay:  "Mon",
		HighestCalorieDate: "2026-10-12",
		DaysLogged:         4,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildWeeklyStatsTieKeepsEarliestDay(t *testing.T) {
	days := []WeeklyDay{
		weeklyDay("2026-10-10", "Sat", true, 1200, 0, 0, 0),
		weeklyDay("2026-10-11", "Sun", true, 1500, 0, 0, 0),
		weeklyDay("2026-10-12", "Mon", true, 1500, 0, 0, 0),
		weeklyDay("2026-10-13", "Tue", true, 1500, 0, 0, 0),
	}

	got := BuildWeeklyStats(days)
	if got.HighestCalorieDate != "2026-10-11" || got.HighestCalorieDay != "Sun" {
		t.Fatalf("expected earliest maximum 2026-10-11, got %s (%s)", got.HighestCalorieDate, got.HighestCalorieDay)
	}
}

func TestBuildWeeklyStatsCountsLoggedZeroCalorieDay(t *testing.T) {
	days := []WeeklyDay{
		weeklyDay("2026-10-15", "Thu", true, 0, 0, 0, 0),
		weeklyDay("2026-10-16", "Fri", true, 400, 10, 50, 8),
	}

	got := BuildWeeklyStats(days)
	if got.DaysLogged != 2 {
		t.Fatalf("expected both logged days to count, got %d", got.DaysLogged)
	}
	if got.AvgCalories != 200 {
		t.Fatalf("expected average 200, got %v", got.AvgCalories)
	}
	if got.HighestCalorieDate != "2026-10-16" {
		t.Fatalf("expected 2026-10-16 as highest day, got %q", got.HighestCalorieDate)
	}
}
