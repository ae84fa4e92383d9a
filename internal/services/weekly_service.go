package services

import (
	"time"
)

const WeeklyWindowDays = 7

type WeeklyDayReader interface {
	FetchDayLog(day time.Time) (DayLog, error)
}

type WeeklyService struct {
	days     WeeklyDayReader
	location *time.Location
}

type WeeklyReport struct {
	From  string      `json:"from"`
	To    string      `json:"to"`
	Days  []WeeklyDay `json:"days"`
	Stats WeeklyStats `json:"stats"`
}

func NewWeeklyService(days WeeklyDayReader, location *time.Location) *WeeklyService {
	if location == nil {
		location = time.UTC
	}
	return &WeeklyService{
		days:     days,
		location: location,
	}
}

// BuildWeeklyReport looks up today and the six days before it, oldest first.
func (service *WeeklyService) BuildWeeklyReport(now time.Time) (WeeklyReport, error) {
	today := DateAtLocation(now, service.location)
	first := today.AddDate(0, 0, -(WeeklyWindowDays - 1))

	days := make([]WeeklyDay, 0, WeeklyWindowDays)
	for offset := 0; offset < WeeklyWindowDays; offset++ {
		day := DateAtLocation(first.AddDate(0, 0, offset), service.location)
		dayLog, err := service.days.FetchDayLog(day)
		if err != nil {
			return WeeklyReport{}, err
		}
		days = append(days, WeeklyDay{
			Label:       day.Format("Mon"),
			DailyTotals: dayLog.Totals,
		})
	}

	return WeeklyReport{
		From:  FormatDay(first, service.location),
		To:    FormatDay(today, service.location),
		Days:  days,
		Stats: BuildWeeklyStats(days),
	}, nil
}
