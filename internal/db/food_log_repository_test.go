package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/macrolog/internal/models"
)

func mustDay(t *testing.T, raw string) time.Time {
	t.Helper()

	day, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return day
}

func newFoodLogRepositoryForTest(t *testing.T) *FoodLogRepository {
	t.Helper()
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "foodlogs.db"))
	return NewFoodLogRepository(database)
}

func TestFoodLogRepositoryRoundTrip(t *testing.T) {
	repo := newFoodLogRepositoryForTest(t)
	day := mustDay(t, "2026-10-16")

	entries, found, err := repo.Load(day)
	if err != nil {
		t.Fatalf("load missing day: %v", err)
	}
	if found || len(entries) != 0 {
		t.Fatalf("expected missing day, got found=%v entries=%#v", found, entries)
	}

	stamp := time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)
	saved := []models.MealEntry{
		{ID: "a", Food: "2 eggs", Calories: 156, Protein: 12, Carbs: 2, Fat: 10, Timestamp: stamp},
		{ID: "b", Food: "1 cup rice", Calories: 130, Protein: 3, Carbs: 28, Fat: 0, Timestamp: stamp.Add(time.Hour)},
	}
	if err := repo.Save(day, saved); err != nil {
		t.Fatalf("save day: %v", err)
	}

	entries, found, err = repo.Load(day)
	if err != nil {
		t.Fatalf("load saved day: %v", err)
	}
	if !found || len(entries) != 2 {
		t.Fatalf("expected 2 stored entries, got found=%v entries=%#v", found, entries)
	}
	if entries[0].ID != "a" || entries[1].ID != "b" {
		t.Fatalf("expected insertion order to be preserved, got %#v", entries)
	}
	if !entries[1].Timestamp.Equal(stamp.Add(time.Hour)) {
		t.Fatalf("expected timestamp %s, got %s", stamp.Add(time.Hour), entries[1].Timestamp)
	}

	saved = append(saved, models.MealEntry{ID: "c", Food: "banana", Calories: 89, Protein: 1, Carbs: 23})
	if err := repo.Save(day, saved); err != nil {
		t.Fatalf("upsert day: %v", err)
	}
	entries, _, err = repo.Load(day)
	if err != nil {
		t.Fatalf("load upserted day: %v", err)
	}
	if len(entries) != 3 || entries[2].ID != "c" {
		t.Fatalf("expected appended entry after upsert, got %#v", entries)
	}

	var stored models.FoodLog
	if err := repo.database.Where("key = ?", "foodlog_2026-10-16").First(&stored).Error; err != nil {
		t.Fatalf("load stored record: %v", err)
	}
	if stored.Version != models.FoodLogPayloadVersion {
		t.Fatalf("expected version %d, got %d", models.FoodLogPayloadVersion, stored.Version)
	}
}

func TestFoodLogRepositoryClearRemovesOnlyThatDay(t *testing.T) {
	repo := newFoodLogRepositoryForTest(t)
	yesterday := mustDay(t, "2026-10-15")
	today := mustDay(t, "2026-10-16")

	if err := repo.Save(yesterday, []models.MealEntry{{ID: "y", Food: "bread", Calories: 79}}); err != nil {
		t.Fatalf("save yesterday: %v", err)
	}
	if err := repo.Save(today, []models.MealEntry{{ID: "t", Food: "egg", Calories: 78}}); err != nil {
		t.Fatalf("save today: %v", err)
	}

	if err := repo.Clear(today); err != nil {
		t.Fatalf("clear today: %v", err)
	}

	keys, err := repo.ListKeys()
	if err != nil {
		t.Fatalf("list keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "foodlog_2026-10-15" {
		t.Fatalf("expected only yesterday to remain, got %v", keys)
	}
	if _, found, err := repo.Load(today); err != nil || found {
		t.Fatalf("expected today to be gone, found=%v err=%v", found, err)
	}

	if err := repo.Clear(today); err != nil {
		t.Fatalf("clearing a missing day should succeed, got %v", err)
	}
}

func TestFoodLogRepositoryReadsLegacyBareArray(t *testing.T) {
	repo := newFoodLogRepositoryForTest(t)
	day := mustDay(t, "2026-10-01")

	legacy := models.FoodLog{
		Key:     "foodlog_2026-10-01",
		LogDate: day,
		Version: 0,
		Payload: `[{"id":"1","food":"chicken","calories":165,"protein":31,"carbs":0,"fat":4,"timestamp":"2026-10-01T12:00:00Z"}]`,
	}
	if err := repo.database.Create(&legacy).Error; err != nil {
		t.Fatalf("seed legacy record: %v", err)
	}

	entries, found, err := repo.Load(day)
	if err != nil {
		t.Fatalf("load legacy record: %v", err)
	}
	if !found || len(entries) != 1 || entries[0].Food != "chicken" || entries[0].Protein != 31 {
		t.Fatalf("unexpected legacy entries found=%v %#v", found, entries)
	}
}

func TestDecodeFoodLogPayloadRejectsUnknownVersion(t *testing.T) {
	_, err := decodeFoodLogPayload([]byte(`{"version":99,"entries":[]}`))
	if !errors.Is(err, ErrUnsupportedPayloadVersion) {
		t.Fatalf("expected ErrUnsupportedPayloadVersion, got %v", err)
	}

	entries, err := decodeFoodLogPayload([]byte(`{"version":1}`))
	if err != nil {
		t.Fatalf("decode empty payload: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil entries, got %#v", entries)
	}
}

func TestSettingsRepositoryGetSet(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "settings.db"))
	repo := NewSettingsRepository(database)

	if _, found, err := repo.Get(models.SettingOwnerPassphraseHash); err != nil || found {
		t.Fatalf("expected missing setting, found=%v err=%v", found, err)
	}

	if err := repo.Set(models.SettingOwnerPassphraseHash, "first"); err != nil {
		t.Fatalf("set setting: %v", err)
	}
	if err := repo.Set(models.SettingOwnerPassphraseHash, "second"); err != nil {
		t.Fatalf("overwrite setting: %v", err)
	}

	value, found, err := repo.Get(models.SettingOwnerPassphraseHash)
	if err != nil || !found || value != "second" {
		t.Fatalf("expected overwritten value, got value=%q found=%v err=%v", value, found, err)
	}
}
