package api

import (
	"net/http"
	"testing"

	"github.com/terraincognita07/macrolog/internal/models"
	"github.com/terraincognita07/macrolog/internal/services"
)

func TestStartNewDayClearsOnlyToday(t *testing.T) {
	app, handler := newAPITestApp(t)
	today := todayUTC()
	yesterday := today.AddDate(0, 0, -1)

	if err := handler.repositories.FoodLogs.Save(yesterday, []models.MealEntry{
		{ID: "y1", Food: "chicken", Calories: 165, Protein: 31, Fat: 4},
	}); err != nil {
		t.Fatalf("seed yesterday: %v", err)
	}
	assertStatus(t, doJSONRequest(t, app, http.MethodPost, "/api/meals", `{"text":"2 eggs"}`), http.StatusCreated)

	response := doJSONRequest(t, app, http.MethodDelete, "/api/today", "")
	assertStatus(t, response, http.StatusOK)

	keys, err := handler.repositories.FoodLogs.ListKeys()
	if err != nil {
		t.Fatalf("list keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != models.FoodLogKeyPrefix+yesterday.Format("2006-01-02") {
		t.Fatalf("expected only yesterday's key to remain, got %v", keys)
	}

	weeklyResponse := doJSONRequest(t, app, http.MethodGet, "/api/weekly", "")
	assertStatus(t, weeklyResponse, http.StatusOK)
	report := services.WeeklyReport{}
	decodeJSONBody(t, weeklyResponse, &report)

	if report.Stats.DaysLogged != 1 || report.Stats.AvgCalories != 165 {
		t.Fatalf("expected yesterday to still count in weekly stats, got %#v", report.Stats)
	}
	if report.Stats.HighestCalorieDate != yesterday.Format("2006-01-02") {
		t.Fatalf("expected yesterday as highest day, got %#v", report.Stats)
	}
}

func TestGetDayRoute(t *testing.T) {
	app, handler := newAPITestApp(t)
	day := todayUTC().AddDate(0, 0, -3)
	path := "/api/days/" + day.Format("2006-01-02")

	empty := doJSONRequest(t, app, http.MethodGet, path, "")
	assertStatus(t, empty, http.StatusOK)
	emptyLog := services.DayLog{}
	decodeJSONBody(t, empty, &emptyLog)
	if emptyLog.Totals.Logged || len(emptyLog.Entries) != 0 {
		t.Fatalf("expected missing day to be unlogged, got %#v", emptyLog)
	}

	if err := handler.repositories.FoodLogs.Save(day, []models.MealEntry{
		{ID: "d1", Food: "bread", Calories: 79, Protein: 3, Carbs: 14, Fat: 1},
		{ID: "d2", Food: "bread", Calories: 79, Protein: 3, Carbs: 14, Fat: 1},
	}); err != nil {
		t.Fatalf("seed day: %v", err)
	}

	stored := doJSONRequest(t, app, http.MethodGet, path, "")
	assertStatus(t, stored, http.StatusOK)
	dayLog := services.DayLog{}
	decodeJSONBody(t, stored, &dayLog)
	if !dayLog.Totals.Logged || dayLog.Totals.EntryCount != 2 || dayLog.Totals.Totals.Calories != 158 {
		t.Fatalf("unexpected day log %#v", dayLog)
	}
}

func TestGetDayRejectsInvalidDate(t *testing.T) {
	app, _ := newAPITestApp(t)

	response := doJSONRequest(t, app, http.MethodGet, "/api/days/2026-13-40", "")
	assertStatus(t, response, http.StatusBadRequest)
}

func TestWeeklyRouteReturnsSevenRowsOldestFirst(t *testing.T) {
	app, handler := newAPITestApp(t)
	today := todayUTC()

	seeds := map[int][]models.MealEntry{
		-6: {{ID: "a", Calories: 600, Protein: 30, Carbs: 60, Fat: 20}},
		-2: {{ID: "b", Calories: 900, Protein: 40, Carbs: 100, Fat: 30}},
		-1: {{ID: "c", Calories: 900, Protein: 20, Carbs: 90, Fat: 10}},
	}
	for offset, entries := range seeds {
		if err := handler.repositories.FoodLogs.Save(today.AddDate(0, 0, offset), entries); err != nil {
			t.Fatalf("seed offset %d: %v", offset, err)
		}
	}

	response := doJSONRequest(t, app, http.MethodGet, "/api/weekly", "")
	assertStatus(t, response, http.StatusOK)
	report := services.WeeklyReport{}
	decodeJSONBody(t, response, &report)

	if len(report.Days) != services.WeeklyWindowDays {
		t.Fatalf("expected %d rows, got %d", services.WeeklyWindowDays, len(report.Days))
	}
	if report.Days[0].Date != today.AddDate(0, 0, -6).Format("2006-01-02") || report.Days[6].Date != today.Format("2006-01-02") {
		t.Fatalf("expected oldest-first window ending today, got %s..%s", report.Days[0].Date, report.Days[6].Date)
	}
	if report.Days[0].Label != today.AddDate(0, 0, -6).Format("Mon") {
		t.Fatalf("unexpected weekday label %q", report.Days[0].Label)
	}
	if report.Stats.DaysLogged != 3 || report.Stats.AvgCalories != 800 {
		t.Fatalf("unexpected stats %#v", report.Stats)
	}
	if report.Stats.HighestCalorieDate != today.AddDate(0, 0, -2).Format("2006-01-02") {
		t.Fatalf("expected tie to resolve to the earlier day, got %#v", report.Stats)
	}
}

func TestWeeklyRouteWithNothingLogged(t *testing.T) {
	app, _ := newAPITestApp(t)

	response := doJSONRequest(t, app, http.MethodGet, "/api/weekly", "")
	assertStatus(t, response, http.StatusOK)
	report := services.WeeklyReport{}
	decodeJSONBody(t, response, &report)

	if report.Stats.DaysLogged != 0 || report.Stats.AvgCalories != 0 || report.Stats.HighestCalorieDay != "None" {
		t.Fatalf("unexpected empty stats %#v", report.Stats)
	}
}
