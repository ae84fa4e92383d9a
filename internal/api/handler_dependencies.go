package api

import (
	"github.com/terraincognita07/macrolog/internal/db"
	"github.com/terraincognita07/macrolog/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB, rules services.FoodRuleTable) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.interpreter = services.NewFoodInterpreter(rules)
	handler.mealService = services.NewMealService(handler.repositories.FoodLogs, handler.interpreter, handler.location, handler.logger.Named("meals"))
	handler.weeklyService = services.NewWeeklyService(handler.mealService, handler.location)
	handler.exportService = services.NewExportService(handler.mealService, handler.location)
	handler.ownerAuth = services.NewOwnerAuthService(handler.repositories.Settings)
	return handler
}
