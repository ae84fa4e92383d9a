package db

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/macrolog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUnsupportedPayloadVersion = errors.New("unsupported food log payload version")

type foodLogPayload struct {
	Version int                `json:"version"`
	Entries []models.MealEntry `json:"entries"`
}

// FoodLogRepository stores one record per calendar day under the key
// foodlog_<YYYY-MM-DD>. Days are taken by their local calendar date.
type FoodLogRepository struct {
	database *gorm.DB
}

func NewFoodLogRepository(database *gorm.DB) *FoodLogRepository {
	return &FoodLogRepository{database: database}
}

func FoodLogKey(day time.Time) string {
	return models.FoodLogKeyPrefix + day.Format("2006-01-02")
}

func calendarDate(day time.Time) time.Time {
	year, month, date := day.Date()
	return time.Date(year, month, date, 0, 0, 0, 0, time.UTC)
}

// Load returns the day's entries in insertion order. The bool reports whether
// a record exists for the day.
func (repo *FoodLogRepository) Load(day time.Time) ([]models.MealEntry, bool, error) {
	record := models.FoodLog{}
	result := repo.database.Where("key = ?", FoodLogKey(day)).Limit(1).Find(&record)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}

	entries, err := decodeFoodLogPayload([]byte(record.Payload))
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", record.Key, err)
	}
	return entries, true, nil
}

// Save replaces the whole day record in one upsert.
func (repo *FoodLogRepository) Save(day time.Time, entries []models.MealEntry) error {
	if entries == nil {
		entries = []models.MealEntry{}
	}
	payload, err := json.Marshal(foodLogPayload{Version: models.FoodLogPayloadVersion, Entries: entries})
	if err != nil {
		return fmt.Errorf("encode food log payload: %w", err)
	}

	record := models.FoodLog{
		Key:     FoodLogKey(day),
		LogDate: calendarDate(day),
		Version: models.FoodLogPayloadVersion,
		Payload: string(payload),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "payload", "updated_at"}),
	}).Create(&record).Error
}

// Clear deletes only the given day's record.
func (repo *FoodLogRepository) Clear(day time.Time) error {
	return repo.database.Where("key = ?", FoodLogKey(day)).Delete(&models.FoodLog{}).Error
}

// ListKeys returns every stored key in date order.
func (repo *FoodLogRepository) ListKeys() ([]string, error) {
	keys := make([]string, 0)
	if err := repo.database.Model(&models.FoodLog{}).Order("log_date ASC").Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// decodeFoodLogPayload reads the versioned document and also accepts the
// legacy bare entry array, which predates the version tag.
func decodeFoodLogPayload(raw []byte) ([]models.MealEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		entries := make([]models.MealEntry, 0)
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}

	payload := foodLogPayload{}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, err
	}
	if payload.Version < 1 || payload.Version > models.FoodLogPayloadVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedPayloadVersion, payload.Version)
	}
	if payload.Entries == nil {
		payload.Entries = []models.MealEntry{}
	}
	return payload.Entries, nil
}
