package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/macrolog/internal/models"
)

var ExportCSVHeaders = []string{
	"Date",
	"Entries",
	"Calories",
	"Protein",
	"Carbs",
	"Fat",
	"Foods",
}

type ExportDayReader interface {
	FetchDayLog(day time.Time) (DayLog, error)
}

type ExportService struct {
	days     ExportDayReader
	location *time.Location
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	LoggedDays   int    `json:"logged_days"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from,omitempty"`
	DateTo       string `json:"date_to,omitempty"`
}

type ExportDay struct {
	Date    string             `json:"date"`
	Totals  models.Nutrients   `json:"totals"`
	Entries []models.MealEntry `json:"entries"`
}

func NewExportService(days ExportDayReader, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{
		days:     days,
		location: location,
	}
}

// LoadLoggedDays returns the logged days of the inclusive range, oldest first.
func (service *ExportService) LoadLoggedDays(from time.Time, to time.Time) ([]ExportDay, error) {
	days := make([]ExportDay, 0)
	last := DateAtLocation(to, service.location)
	for cursor := DateAtLocation(from, service.location); !cursor.After(last); cursor = DateAtLocation(cursor.AddDate(0, 0, 1), service.location) {
		dayLog, err := service.days.FetchDayLog(cursor)
		if err != nil {
			return nil, err
		}
		if !dayLog.Totals.Logged {
			continue
		}
		days = append(days, ExportDay{
			Date:    dayLog.Date,
			Totals:  dayLog.Totals.Totals,
			Entries: dayLog.Entries,
		})
	}
	return days, nil
}

func (service *ExportService) BuildSummary(from time.Time, to time.Time) (ExportSummary, error) {
	days, err := service.LoadLoggedDays(from, to)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(days) == 0 {
		return ExportSummary{}, nil
	}

	totalEntries := 0
	for _, day := range days {
		totalEntries += len(day.Entries)
	}
	return ExportSummary{
		TotalEntries: totalEntries,
		LoggedDays:   len(days),
		HasData:      true,
		DateFrom:     days[0].Date,
		DateTo:       days[len(days)-1].Date,
	}, nil
}

func (day ExportDay) CSVColumns() []string {
	foods := make([]string, 0, len(day.Entries))
	for _, entry := range day.Entries {
		foods = append(foods, entry.Food)
	}
	return []string{
		day.Date,
		strconv.Itoa(len(day.Entries)),
		formatExportNumber(day.Totals.Calories),
		formatExportNumber(day.Totals.Protein),
		formatExportNumber(day.Totals.Carbs),
		formatExportNumber(day.Totals.Fat),
		escapeSpreadsheetCell(strings.Join(foods, "; ")),
	}
}

// escapeSpreadsheetCell keeps spreadsheet apps from reading free text as a
// formula.
func escapeSpreadsheetCell(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + value
	}
	return value
}

func formatExportNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
