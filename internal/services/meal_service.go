package services

import (
	"errors"
	"math"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/terraincognita07/macrolog/internal/models"
	"go.uber.org/zap"
)

const MaxMealTextLength = 500

var (
	ErrEmptyMealText         = errors.New("meal text is empty")
	ErrMealEntryCreateFailed = errors.New("create meal entry failed")
	ErrMealLogLoadFailed     = errors.New("load meal log failed")
	ErrMealLogSaveFailed     = errors.New("save meal log failed")
	ErrMealLogClearFailed    = errors.New("clear meal log failed")
	ErrMealTotalsOutOfRange  = errors.New("meal totals out of range")
)

// MealLogGateway is the only path from the services to stored day logs. Days
// are passed as local midnights.
type MealLogGateway interface {
	Load(day time.Time) ([]models.MealEntry, bool, error)
	Save(day time.Time, entries []models.MealEntry) error
	Clear(day time.Time) error
}

type MealEstimator interface {
	Estimate(text string) MealEstimate
}

type DayLog struct {
	Date    string             `json:"date"`
	Key     string             `json:"key"`
	Entries []models.MealEntry `json:"entries"`
	Totals  DailyTotals        `json:"totals"`
}

type MealService struct {
	gateway   MealLogGateway
	estimator MealEstimator
	location  *time.Location
	logger    *zap.Logger
	now       func() time.Time
	newID     func() (string, error)
	mu        sync.Mutex
}

func NewMealService(gateway MealLogGateway, estimator MealEstimator, location *time.Location, logger *zap.Logger) *MealService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MealService{
		gateway:   gateway,
		estimator: estimator,
		location:  location,
		logger:    logger,
		now:       time.Now,
		newID:     newMealEntryID,
	}
}

func newMealEntryID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (service *MealService) Location() *time.Location {
	return service.location
}

func (service *MealService) Today() time.Time {
	return DateAtLocation(service.now(), service.location)
}

func (service *MealService) Estimate(text string) (MealEstimate, error) {
	normalized, err := NormalizeMealText(text)
	if err != nil {
		return MealEstimate{}, err
	}
	return service.estimator.Estimate(normalized), nil
}

// LogMeal estimates text and appends the entry to today's log. Nothing is
// written unless the whole updated day saves.
func (service *MealService) LogMeal(text string) (models.MealEntry, DayLog, error) {
	normalized, err := NormalizeMealText(text)
	if err != nil {
		return models.MealEntry{}, DayLog{}, err
	}

	estimate := service.estimator.Estimate(normalized)
	id, err := service.newID()
	if err != nil {
		service.logger.Error("generate meal entry id", zap.Error(err))
		return models.MealEntry{}, DayLog{}, ErrMealEntryCreateFailed
	}

	now := service.now().In(service.location)
	day := DateAtLocation(now, service.location)
	entry := models.MealEntry{
		ID:        id,
		Food:      estimate.Food,
		Calories:  estimate.Nutrients.Calories,
		Protein:   estimate.Nutrients.Protein,
		Carbs:     estimate.Nutrients.Carbs,
		Fat:       estimate.Nutrients.Fat,
		Timestamp: now,
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	existing, _, err := service.gateway.Load(day)
	if err != nil {
		service.logger.Error("load meal log", zap.String("date", FormatDay(day, service.location)), zap.Error(err))
		return models.MealEntry{}, DayLog{}, ErrMealLogLoadFailed
	}

	updated := make([]models.MealEntry, 0, len(existing)+1)
	updated = append(updated, existing...)
	updated = append(updated, entry)
	if !finiteNutrients(entry.Nutrients()) || !finiteNutrients(SumMealTotals(updated)) {
		service.logger.Warn("meal rejected", zap.String("date", FormatDay(day, service.location)), zap.String("reason", "totals out of range"))
		return models.MealEntry{}, DayLog{}, ErrMealTotalsOutOfRange
	}
	if err := service.gateway.Save(day, updated); err != nil {
		service.logger.Error("save meal log", zap.String("date", FormatDay(day, service.location)), zap.Error(err))
		return models.MealEntry{}, DayLog{}, ErrMealLogSaveFailed
	}

	service.logger.Info("meal logged",
		zap.String("date", FormatDay(day, service.location)),
		zap.String("entry_id", entry.ID),
		zap.Float64("calories", entry.Calories),
		zap.Bool("used_default", estimate.UsedDefault),
	)
	return entry, service.buildDayLog(day, updated), nil
}

func (service *MealService) FetchDayLog(day time.Time) (DayLog, error) {
	dayStart := DateAtLocation(day, service.location)
	entries, _, err := service.gateway.Load(dayStart)
	if err != nil {
		service.logger.Error("load meal log", zap.String("date", FormatDay(dayStart, service.location)), zap.Error(err))
		return DayLog{}, ErrMealLogLoadFailed
	}
	return service.buildDayLog(dayStart, entries), nil
}

func (service *MealService) FetchTodayLog() (DayLog, error) {
	return service.FetchDayLog(service.Today())
}

// StartNewDay clears today's log only; earlier days are left as they are.
func (service *MealService) StartNewDay() (DayLog, error) {
	today := service.Today()

	service.mu.Lock()
	defer service.mu.Unlock()

	if err := service.gateway.Clear(today); err != nil {
		service.logger.Error("clear meal log", zap.String("date", FormatDay(today, service.location)), zap.Error(err))
		return DayLog{}, ErrMealLogClearFailed
	}
	service.logger.Info("meal log cleared", zap.String("date", FormatDay(today, service.location)))
	return service.buildDayLog(today, nil), nil
}

func (service *MealService) buildDayLog(day time.Time, entries []models.MealEntry) DayLog {
	if entries == nil {
		entries = []models.MealEntry{}
	}
	return DayLog{
		Date:    FormatDay(day, service.location),
		Key:     FoodLogKey(day, service.location),
		Entries: entries,
		Totals:  BuildDailyTotals(day, entries, service.location),
	}
}

func finiteNutrients(value models.Nutrients) bool {
	for _, field := range []float64{value.Calories, value.Protein, value.Carbs, value.Fat} {
		if math.IsInf(field, 0) || math.IsNaN(field) {
			return false
		}
	}
	return true
}

// NormalizeMealText trims the text and caps its length. Blank text is
// rejected with ErrEmptyMealText.
func NormalizeMealText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyMealText
	}
	if utf8.RuneCountInString(trimmed) <= MaxMealTextLength {
		return trimmed, nil
	}
	runes := []rune(trimmed)
	return strings.TrimSpace(string(runes[:MaxMealTextLength])), nil
}
