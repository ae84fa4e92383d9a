package db

import "gorm.io/gorm"

type Repositories struct {
	FoodLogs *FoodLogRepository
	Settings *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		FoodLogs: NewFoodLogRepository(database),
		Settings: NewSettingsRepository(database),
	}
}
