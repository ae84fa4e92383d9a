package models

import "time"

const (
	FoodLogKeyPrefix      = "foodlog_"
	FoodLogPayloadVersion = 1
)

// FoodLog is the stored key-value record for one calendar day. Payload holds
// the versioned JSON document with the day's entries.
type FoodLog struct {
	Key       string    `gorm:"primaryKey"`
	LogDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_food_logs_log_date"`
	Version   int       `gorm:"not null;default:1"`
	Payload   string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AppSetting struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

const SettingOwnerPassphraseHash = "owner_passphrase_hash"
